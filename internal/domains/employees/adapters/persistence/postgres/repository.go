package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/vendasapp/vendas-api/internal/domains/employees/domain"
	"github.com/vendasapp/vendas-api/internal/domains/employees/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists employees in PostgreSQL using GORM. The unique index on
// name is the authoritative uniqueness enforcer.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed repository. Caller manages DB lifecycle.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

type employeeRecord struct {
	ID        int64     `gorm:"primaryKey;column:id"`
	Name      string    `gorm:"column:name;uniqueIndex"`
	Role      string    `gorm:"column:role"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (employeeRecord) TableName() string { return "employees" }

func (r *Repository) List(ctx context.Context) ([]*domain.Employee, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []employeeRecord
	if err := r.db.WithContext(ctx).Order("id").Find(&records).Error; err != nil {
		return nil, err
	}
	employees := make([]*domain.Employee, 0, len(records))
	for i := range records {
		employees = append(employees, records[i].toDomain())
	}
	return employees, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record employeeRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

func (r *Repository) Create(ctx context.Context, employee *domain.Employee) (*domain.Employee, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, errors.New("employee is nil")
	}
	clone := *employee
	if err := clone.Validate(); err != nil {
		return nil, err
	}
	record := employeeRecord{Name: clone.Name, Role: clone.Role}
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ports.ErrDuplicateName
		}
		return nil, err
	}
	return record.toDomain(), nil
}

func (r *Repository) Update(ctx context.Context, employee *domain.Employee) (*domain.Employee, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, errors.New("employee is nil")
	}
	clone := *employee
	if err := clone.Validate(); err != nil {
		return nil, err
	}
	updates := map[string]any{
		"name":       clone.Name,
		"role":       clone.Role,
		"updated_at": time.Now(),
	}
	result := r.db.WithContext(ctx).Model(&employeeRecord{}).Where("id = ?", clone.ID).Updates(updates)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return nil, ports.ErrDuplicateName
		}
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ports.ErrNotFound
	}
	return r.GetByID(ctx, clone.ID)
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&employeeRecord{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}

func (r *Repository) CountOthersWithName(ctx context.Context, name string, excludeID int64) (int64, error) {
	if err := r.ensureDB(); err != nil {
		return 0, err
	}
	var count int64
	err := r.db.WithContext(ctx).
		Model(&employeeRecord{}).
		Where("name = ? AND id <> ?", name, excludeID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres employee repository not configured")
	}
	return nil
}

func (r employeeRecord) toDomain() *domain.Employee {
	return &domain.Employee{ID: r.ID, Name: r.Name, Role: r.Role}
}
