package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jobfit/backend/agent"
	"github.com/jobfit/backend/matching"
	"github.com/jobfit/backend/models"
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank a local job pool against a skill list",
	Long:  "Rank the jobs in a JSON file against a comma separated skill list and print the ranked jobs, gap report and recommendations as JSON. Needs no cloud configuration.",
	RunE:  runRank,
}

var (
	rankSkills        string
	rankJobsPath      string
	rankTopN          int
	rankLimit         int
	rankLocationTypes []string
	rankMinSalary     int
	rankPolicyPath    string
	rankCatalogPath   string
)

func init() {
	rankCmd.Flags().StringVarP(&rankSkills, "skills", "s", "", "Comma separated skills, e.g. \"Go,SQL\" (required)")
	rankCmd.Flags().StringVarP(&rankJobsPath, "jobs", "j", "", "Path to a JSON job pool (required)")
	rankCmd.Flags().IntVar(&rankTopN, "top", matching.DefaultGapTopN, "Number of top jobs used for gap analysis")
	rankCmd.Flags().IntVar(&rankLimit, "limit", 0, "Maximum number of ranked jobs to print (0 = all)")
	rankCmd.Flags().StringSliceVar(&rankLocationTypes, "location-type", nil, "Only keep jobs of these location types (On-site, Hybrid, Remote)")
	rankCmd.Flags().IntVar(&rankMinSalary, "min-salary", 0, "Drop jobs whose listed salary is below this amount")
	rankCmd.Flags().StringVar(&rankPolicyPath, "policy", "", "Path to a YAML scoring policy")
	rankCmd.Flags().StringVar(&rankCatalogPath, "catalog", "", "Path to a YAML learning catalog")

	if err := rankCmd.MarkFlagRequired("skills"); err != nil {
		panic(fmt.Sprintf("failed to mark skills flag as required: %v", err))
	}
	if err := rankCmd.MarkFlagRequired("jobs"); err != nil {
		panic(fmt.Sprintf("failed to mark jobs flag as required: %v", err))
	}

	rootCmd.AddCommand(rankCmd)
}

func runRank(cmd *cobra.Command, _ []string) error {
	jobs, err := agent.LoadJobPoolFile(rankJobsPath)
	if err != nil {
		return err
	}

	engine, err := newEngine(rankPolicyPath, rankCatalogPath)
	if err != nil {
		return err
	}

	filters := models.MatchFilters{LocationTypes: rankLocationTypes}
	if rankMinSalary > 0 {
		minSalary := rankMinSalary
		filters.MinSalary = &minSalary
	}

	result, err := engine.Match(splitSkills(rankSkills), jobs, filters, matching.MatchOptions{
		TopN:  rankTopN,
		Limit: rankLimit,
	})
	if err != nil {
		return fmt.Errorf("failed to rank jobs: %w", err)
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func splitSkills(raw string) []string {
	return strings.Split(raw, ",")
}
