package response

import "net/http"

// CreateStatus is 201 when the caller asked for return=representation
// (the body carries the inserted rows), 200 otherwise (the body carries
// only driver metadata like affected/inserted-id counts).
func CreateStatus(returnRepresentation bool) int {
	if returnRepresentation {
		return http.StatusCreated
	}
	return http.StatusOK
}

// DriverMetadata is the create/update/delete body shape used whenever
// return=representation was not requested.
type DriverMetadata struct {
	AffectedRows int64 `json:"affectedRows"`
	LastInsertID int64 `json:"lastInsertId,omitempty"`
}
