package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// version is reported by /health and the MCP initialize handshake
const version = "1.0.0"

// @title JobFit API
// @version 1.0
// @description Skill-based job matching backend: CV skill extraction, job ranking, skill gap analysis and learning recommendations.
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@jobfit.dev

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

var rootCmd = &cobra.Command{
	Use:   "jobfit",
	Short: "JobFit skill matching backend",
	Long:  "JobFit ranks job postings against a user's skills and reports the skill gaps across the best matches. Without a subcommand it starts the HTTP API server.",
	RunE:  runServe,
}

func main() {
	// Load .env file if present (for local development)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
