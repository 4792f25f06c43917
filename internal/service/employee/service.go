package employee

import (
	"context"

	"github.com/ymerta/vardiya/internal/domain/employee"
	"github.com/ymerta/vardiya/internal/pkg/sse"
)

type EmployeeService struct {
	employeeRepo employee.EmployeeRepository
	hub          *sse.Hub
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository, hub *sse.Hub) *EmployeeService {
	return &EmployeeService{employeeRepo: employeeRepo, hub: hub}
}

func (s *EmployeeService) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		FullName:   req.FullName,
		HourlyRate: req.HourlyRate,
		Active:     active,
		Color:      req.Color,
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	resp := employee.NewEmployeeResponse(created)
	s.hub.Publish(sse.Event{Event: "employee.created", Data: resp})
	return resp, nil
}

func (s *EmployeeService) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	e, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.NewEmployeeResponse(e), nil
}

func (s *EmployeeService) List(ctx context.Context, activeOnly bool) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, employee.NewEmployeeResponse(e))
	}
	return responses, nil
}

func (s *EmployeeService) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	updated, err := s.employeeRepo.Update(ctx, req)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	resp := employee.NewEmployeeResponse(updated)
	s.hub.Publish(sse.Event{Event: "employee.updated", Data: resp})
	return resp, nil
}

func (s *EmployeeService) Delete(ctx context.Context, id string) error {
	if err := s.employeeRepo.SoftDelete(ctx, id); err != nil {
		return err
	}
	s.hub.Publish(sse.Event{Event: "employee.deleted", Data: map[string]string{"id": id}})
	return nil
}
