// internal/domain/state/dto.go
package state

type CreateStateRequest struct {
	Scope string `json:"scope" binding:"required,max=50"`
	Name  string `json:"name" binding:"required,max=50"`
}
