package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"

	"findoc_processor/pkg/api/config"
	"findoc_processor/pkg/api/ingest"
	"findoc_processor/pkg/api/statements"
	"findoc_processor/pkg/core/agent"
	"findoc_processor/pkg/core/extraction"
	"findoc_processor/pkg/core/llm"
	"findoc_processor/pkg/core/store"
)

func main() {
	// Load environment variables
	godotenv.Load()

	ctx := context.Background()

	// Initialize manager from config
	configData, _ := os.ReadFile("config/models.yaml")
	var agentCfg agent.Config
	yaml.Unmarshal(configData, &agentCfg)
	agentMgr := agent.NewManager(agentCfg)

	// Narrative analysis is optional; the compare/summary endpoints report
	// unavailability when the API key is missing.
	narrator, err := llm.NewNarrator(ctx)
	if err != nil {
		fmt.Printf("[WARNING] Narrative analysis disabled: %v\n", err)
		narrator = nil
	} else {
		defer narrator.Close()
	}

	extractor := extraction.NewService(agentMgr, narrator)

	if err := store.InitDB(ctx); err != nil {
		fmt.Printf("[FATAL] Database init failed: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	// Provider configuration endpoints
	configHandler := config.NewHandler(agentMgr)
	http.HandleFunc("/api/config", configHandler.HandleConfig)
	http.HandleFunc("/api/config/switch", configHandler.HandleSwitch)

	// Ingestion endpoint
	ingest.InitHandler(extractor)
	http.HandleFunc("/api/ingest", ingest.HandleIngest)

	// Stored statement endpoints
	statements.InitHandler(extractor)
	http.HandleFunc("/api/companies", statements.HandleCompanies)
	http.HandleFunc("/api/company", statements.HandleCompany)
	http.HandleFunc("/api/compare", statements.HandleCompare)
	http.HandleFunc("/api/summary", statements.HandleSummary)
	http.HandleFunc("/api/statement", statements.HandleDelete)

	fmt.Println("API server starting on :8080...")
	fmt.Println("  - GET    /api/config")
	fmt.Println("  - POST   /api/config/switch")
	fmt.Println("  - POST   /api/ingest")
	fmt.Println("  - GET    /api/companies")
	fmt.Println("  - GET    /api/company?name=X")
	fmt.Println("  - GET    /api/compare?company=X")
	fmt.Println("  - GET    /api/summary?company=X")
	fmt.Println("  - DELETE /api/statement?company=X&year=Y")

	if err := http.ListenAndServe(":8080", nil); err != nil {
		fmt.Printf("[FATAL] Server failed to start: %v\n", err)
		os.Exit(1)
	}
}
