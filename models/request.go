package models

import (
	"encoding/json"
	"fmt"
)

// FlexibleStringSlice can unmarshal from either a string or []string
type FlexibleStringSlice []string

func (f *FlexibleStringSlice) UnmarshalJSON(data []byte) error {
	// Try to unmarshal as []string first
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*f = arr
		return nil
	}

	// Try to unmarshal as string
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		if str != "" {
			*f = []string{str}
		} else {
			*f = []string{}
		}
		return nil
	}

	return fmt.Errorf("expected a string or an array of strings, got %s", data)
}

// AnalyzeRequest represents the API request for résumé analysis
// @Description Résumé analysis request with pasted text
type AnalyzeRequest struct {
	Role       string `json:"role" form:"role" binding:"required" example:"Web Developer"`
	ResumeText string `json:"resumeText" form:"resume_text" example:"Built responsive UI with HTML5 and modern JavaScript."`
}

// AnalyzeResponse represents the API response for résumé analysis
// @Description Found and missing skills with learning recommendations
type AnalyzeResponse struct {
	AnalysisID      string         `json:"analysisId" yaml:"analysisId" example:"3f1c2d9e-8a5b-4c1e-9f0a-2b7d6e4c1a90"`
	Role            string         `json:"role" yaml:"role" example:"Web Developer"`
	Found           []string       `json:"found" yaml:"found" example:"HTML,JavaScript"`
	Missing         []string       `json:"missing" yaml:"missing" example:"CSS"`
	Recommendations []ResourceLink `json:"recommendations" yaml:"recommendations"`
	Message         string         `json:"message,omitempty" yaml:"message,omitempty" example:"2 of 3 skills found"`
}

// ResourcesRequest represents a request to resolve learning resources
// @Description Skill names to resolve into learning resources
type ResourcesRequest struct {
	Skills FlexibleStringSlice `json:"skills" swaggertype:"array,string" example:"Kubernetes,Docker"`
}

// ResourcesResponse represents resolved learning resources
// @Description One entry per requested skill, in request order
type ResourcesResponse struct {
	Resources []ResourceLink `json:"resources"`
}

// RoleSummary is a role name with its skill count
// @Description Role listed by the taxonomy
type RoleSummary struct {
	Name       string `json:"name" yaml:"name" example:"Web Developer"`
	SkillCount int    `json:"skillCount" yaml:"skillCount" example:"9"`
}

// RolesResponse lists the taxonomy's roles in declared order
// @Description Available target roles
type RolesResponse struct {
	Roles []RoleSummary `json:"roles"`
}

// ErrorResponse represents an API error response
// @Description Standard error response
type ErrorResponse struct {
	Error   string `json:"error" example:"Nothing to analyze"`
	Code    int    `json:"code" example:"400"`
	Details string `json:"details,omitempty" example:"résumé text is empty"`
}

// HealthResponse represents health check response
// @Description Server health status
type HealthResponse struct {
	Status    string `json:"status" example:"healthy"`
	Version   string `json:"version" example:"1.0.0"`
	Timestamp string `json:"timestamp" example:"2024-01-15T10:30:00Z"`
	Roles     int    `json:"roles" example:"6"`
}
