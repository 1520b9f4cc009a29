package tools

import (
	"context"
	"encoding/json"

	"github.com/myjobmatch/skillgap/models"
	"github.com/myjobmatch/skillgap/taxonomy"
)

// ListRolesTool lists the target roles of the loaded taxonomy
type ListRolesTool struct {
	taxonomy *taxonomy.Taxonomy
}

// NewListRolesTool creates a new role listing tool
func NewListRolesTool(tx *taxonomy.Taxonomy) *ListRolesTool {
	return &ListRolesTool{taxonomy: tx}
}

func (t *ListRolesTool) Name() string {
	return "list_roles"
}

func (t *ListRolesTool) Description() string {
	return "List the target roles a résumé can be analyzed against, with the number of skills each role expects."
}

func (t *ListRolesTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type":       "object",
		"properties": map[string]interface{}{},
	}
}

func (t *ListRolesTool) Execute(ctx context.Context, input json.RawMessage) (json.RawMessage, error) {
	return NewSuccessResult(models.RolesResponse{
		Roles: t.taxonomy.Summaries(),
	})
}
