package vendasserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	employeedomain "github.com/vendasapp/vendas-api/internal/domains/employees/domain"
	employeeports "github.com/vendasapp/vendas-api/internal/domains/employees/ports"
	apierrors "github.com/vendasapp/vendas-api/internal/shared/errors"
)

// EmployeesAPI implements the /funcionarios endpoints.
type EmployeesAPI struct {
	service employeeports.Service
}

// NewEmployeesAPI wires dependencies.
func NewEmployeesAPI(service employeeports.Service) EmployeesAPI {
	return EmployeesAPI{service: service}
}

// Employee is the transport-level employee payload.
type Employee struct {
	Id     int64  `json:"id"`
	Nome   string `json:"nome"`
	Funcao string `json:"funcao"`
}

func fromDomainEmployee(employee *employeedomain.Employee) Employee {
	if employee == nil {
		return Employee{}
	}
	return Employee{
		Id:     employee.ID,
		Nome:   employee.Name,
		Funcao: employee.Role,
	}
}

func (payload Employee) toDomain() (*employeedomain.Employee, error) {
	return employeedomain.NewEmployee(payload.Id, payload.Nome, payload.Funcao)
}

// Get /funcionarios
// List staff entries wrapped in a named collection, matching the contract the
// dashboard consumes.
func (api *EmployeesAPI) ListEmployees(c *gin.Context) {
	employees, err := api.service.List(c.Request.Context())
	if err != nil {
		respondEmployeeError(c, err)
		return
	}
	if len(employees) == 0 {
		respondNotFound(c, "Nenhum funcionário cadastrado!")
		return
	}
	result := make([]Employee, 0, len(employees))
	for _, employee := range employees {
		result = append(result, fromDomainEmployee(employee))
	}
	c.JSON(http.StatusOK, gin.H{"funcionarios": result})
}

// Get /funcionarios/:idFuncionario
// Fetch an employee by identifier.
func (api *EmployeesAPI) GetEmployeeByID(c *gin.Context) {
	id, ok := pathID(c, "idFuncionario")
	if !ok {
		return
	}
	employee, err := api.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondEmployeeError(c, err)
		return
	}
	c.JSON(http.StatusOK, fromDomainEmployee(employee))
}

// Post /incluirFuncionario
// Create an employee. Names are unique across the staff registry.
func (api *EmployeesAPI) CreateEmployee(c *gin.Context) {
	var payload Employee
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, err)
		return
	}
	employee, err := payload.toDomain()
	if err != nil {
		respondEmployeeError(c, err)
		return
	}
	created, err := api.service.Create(c.Request.Context(), employee)
	if err != nil {
		respondEmployeeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, fromDomainEmployee(created))
}

// Put /atualizarFuncionario/:id
// Update an employee. The employee may keep its own name.
func (api *EmployeesAPI) UpdateEmployee(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var payload Employee
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, err)
		return
	}
	employee, err := payload.toDomain()
	if err != nil {
		respondEmployeeError(c, err)
		return
	}
	updated, err := api.service.Update(c.Request.Context(), id, employee)
	if err != nil {
		respondEmployeeError(c, err)
		return
	}
	c.JSON(http.StatusOK, fromDomainEmployee(updated))
}

// Delete /excluirFuncionario/:id
// Delete an employee. No other records reference the staff registry.
func (api *EmployeesAPI) DeleteEmployee(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := api.service.Delete(c.Request.Context(), id); err != nil {
		respondEmployeeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Funcionário excluído com sucesso"})
}

func respondEmployeeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, employeeports.ErrNotFound):
		respondNotFound(c, "Funcionário não encontrado")
	case errors.Is(err, employeeports.ErrDuplicateName):
		respondProblem(c, apierrors.ErrDuplicate.
			WithDetail("Nome já está sendo usado por outro funcionário").
			WithExtension("field", "nome"))
	case errors.Is(err, employeedomain.ErrEmptyName):
		respondProblem(c, apierrors.ErrValidation.WithDetail(err.Error()))
	default:
		respondInternal(c)
	}
}
