package logging

// Common structured log field keys to keep logs searchable/consistent.
const (
	FieldService    = "service"
	FieldVersion    = "version"
	FieldProvider   = "provider"
	FieldEndpoint   = "endpoint"
	FieldPlayer     = "player"
	FieldPlayerID   = "player_id"
	FieldSeason     = "season"
	FieldStatusCode = "status_code"
	FieldCount      = "count"
	FieldDurationMS = "duration_ms"
)
