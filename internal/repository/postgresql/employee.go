package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tomato-writer-2024/PulseOpti-HR-sub007/internal/domain/employee"
	"github.com/tomato-writer-2024/PulseOpti-HR-sub007/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// GetByIDAndCompanyID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByIDAndCompanyID(ctx context.Context, id string, companyID string) (employee.Employee, error) {
	query := `
		SELECT e.id, e.user_id, e.company_id, e.employee_code, e.full_name, e.gender,
			e.phone_number, e.dob, COALESCE(d.name, ''), COALESCE(p.name, ''),
			e.hire_date, e.resignation_date, e.employment_type, e.employment_status,
			e.base_salary, e.created_at, e.updated_at, e.deleted_at
		FROM employees e
		LEFT JOIN departments d ON d.id = e.department_id
		LEFT JOIN positions p ON p.id = e.position_id
		WHERE e.id = $1 AND e.company_id = $2 AND e.deleted_at IS NULL
	`

	var emp employee.Employee
	err := e.db.QueryRow(ctx, query, id, companyID).Scan(
		&emp.ID, &emp.UserID, &emp.CompanyID, &emp.EmployeeCode, &emp.FullName,
		&emp.Gender, &emp.PhoneNumber, &emp.DOB, &emp.Department, &emp.PositionTitle,
		&emp.HireDate, &emp.ResignationDate, &emp.EmploymentType, &emp.EmploymentStatus,
		&emp.BaseSalary, &emp.CreatedAt, &emp.UpdatedAt, &emp.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee %s: %w", id, err)
	}

	return emp, nil
}

// GetActiveByCompanyID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetActiveByCompanyID(ctx context.Context, companyID string) ([]employee.Employee, error) {
	query := `
		SELECT e.id, e.user_id, e.company_id, e.employee_code, e.full_name, e.gender,
			e.phone_number, e.dob, COALESCE(d.name, ''), COALESCE(p.name, ''),
			e.hire_date, e.resignation_date, e.employment_type, e.employment_status,
			e.base_salary, e.created_at, e.updated_at, e.deleted_at
		FROM employees e
		LEFT JOIN departments d ON d.id = e.department_id
		LEFT JOIN positions p ON p.id = e.position_id
		WHERE e.company_id = $1 AND e.employment_status = $2 AND e.deleted_at IS NULL
		ORDER BY e.id
	`

	rows, err := e.db.Query(ctx, query, companyID, employee.EmploymentStatusActive)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		err := rows.Scan(
			&emp.ID, &emp.UserID, &emp.CompanyID, &emp.EmployeeCode, &emp.FullName,
			&emp.Gender, &emp.PhoneNumber, &emp.DOB, &emp.Department, &emp.PositionTitle,
			&emp.HireDate, &emp.ResignationDate, &emp.EmploymentType, &emp.EmploymentStatus,
			&emp.BaseSalary, &emp.CreatedAt, &emp.UpdatedAt, &emp.DeletedAt,
		)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}
