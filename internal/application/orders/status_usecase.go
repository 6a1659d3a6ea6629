package orders

import (
	"fmt"

	"github.com/jhoicas/comercio-api/internal/application/dto"
	"github.com/jhoicas/comercio-api/internal/domain/repository"
)

// StatusUseCase expone el catálogo de estados de pedido.
type StatusUseCase struct {
	statusRepo repository.OrderStatusRepository
}

// NewStatusUseCase construye el caso de uso.
func NewStatusUseCase(statusRepo repository.OrderStatusRepository) *StatusUseCase {
	return &StatusUseCase{statusRepo: statusRepo}
}

// List devuelve los estados activos del catálogo.
func (uc *StatusUseCase) List() ([]dto.OrderStatusResponse, error) {
	statuses, err := uc.statusRepo.List()
	if err != nil {
		return nil, fmt.Errorf("listar estados de pedido: %w", err)
	}
	out := make([]dto.OrderStatusResponse, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, dto.OrderStatusResponse{ID: s.ID, Code: s.Code, Name: s.Name})
	}
	return out, nil
}
