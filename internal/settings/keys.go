package settings

// Setting keys shared with the host application's configuration store.
const (
	// KeyKnownShelves holds the known-shelf list, stored as a JSON array.
	// Legacy installations stored a comma-joined string.
	KeyKnownShelves = "shelves_known_shelves"
	// KeyWorkflowStage1 names the first workflow stage shelf.
	KeyWorkflowStage1 = "shelves_workflow_stage_1"
	// KeyWorkflowStage2 names the second workflow stage shelf.
	KeyWorkflowStage2 = "shelves_workflow_stage_2"
	// KeyWorkflowEnabled holds "true" or "false".
	KeyWorkflowEnabled = "shelves_workflow_enabled"
)
