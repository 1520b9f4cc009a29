package tools

import (
	"github.com/myjobmatch/skillgap/analyzer"
	"github.com/myjobmatch/skillgap/taxonomy"
)

// NewAnalysisRegistry returns a registry holding the analysis tools for tx
func NewAnalysisRegistry(tx *taxonomy.Taxonomy) *ToolRegistry {
	a := analyzer.New(tx)

	registry := NewToolRegistry()
	registry.Register(NewAnalyzeResumeTool(a))
	registry.Register(NewListRolesTool(tx))
	registry.Register(NewRecommendResourcesTool(a))
	return registry
}
