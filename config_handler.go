package main

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"sorveteria/config"
)

func writeJSONError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}

// GetConfigHandler returns the current configuration.
func GetConfigHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cfg := config.GetConfig()
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(cfg)
	}
}

// SaveConfigHandler persists the configuration. The database path only
// takes effect on the next start; the open store is never swapped
// mid-process.
func SaveConfigHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var newCfg config.Config
		if err := json.NewDecoder(r.Body).Decode(&newCfg); err != nil {
			writeJSONError(w, "Requisição inválida.", http.StatusBadRequest)
			return
		}

		if err := validateDatabasePath(newCfg.DatabasePath); err != nil {
			writeJSONError(w, err.Error(), http.StatusBadRequest)
			return
		}

		if err := config.SaveConfig(newCfg); err != nil {
			log.Printf("Error saving config: %v", err)
			writeJSONError(w, "Falha ao salvar as configurações.", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "Configurações salvas."})
	}
}

// validateDatabasePath checks that the directory holding the database
// file exists. The file itself may not exist yet; SQLite creates it.
func validateDatabasePath(path string) error {
	if path == "" {
		return nil
	}

	dir := filepath.Dir(path)
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.New("A pasta do banco de dados não foi encontrada: " + dir)
		}
		log.Printf("Error checking database path: %v", err)
		return errors.New("Erro ao verificar o caminho do banco de dados.")
	}
	if !info.IsDir() {
		return errors.New("O caminho informado não é uma pasta: " + dir)
	}
	return nil
}
