package project

import "github.com/j0kz/mcp-wizard/pkg/models"

// baseRecommendations are suggested for every project.
var baseRecommendations = []string{
	models.MCPSmartReviewer,
	models.MCPSecurityScanner,
	models.MCPArchitectureAnalyzer,
}

// RecommendedMCPs returns the MCP tools suggested for p. The result always
// contains the three base tools and never contains duplicates.
func RecommendedMCPs(p models.ProjectInfo) []string {
	recs := make([]string, len(baseRecommendations), len(baseRecommendations)+3)
	copy(recs, baseRecommendations)

	if p.Framework == "react" || p.Framework == "next" || p.HasTests {
		recs = append(recs, models.MCPTestGenerator)
	}

	switch p.Framework {
	case "express", "fastify", "nest":
		recs = append(recs, models.MCPAPIDesigner, models.MCPDBSchema)
	}

	return recs
}
