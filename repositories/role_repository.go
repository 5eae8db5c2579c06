package repositories

import (
	"webblog/models"

	"gorm.io/gorm"
)

type RoleRepository interface {
	Create(role *models.Role) error
	GetByID(id string) (*models.Role, error)
	GetByName(name string) (*models.Role, error)
	GetByNames(names []string) ([]models.Role, error)
	GetAll() ([]models.Role, error)
	Update(role *models.Role) error
	Delete(id string) error
}

type roleRepository struct {
	db *gorm.DB
}

func NewRoleRepository(db *gorm.DB) RoleRepository {
	return &roleRepository{db: db}
}

func (r *roleRepository) Create(role *models.Role) error {
	return r.db.Create(role).Error
}

func (r *roleRepository) GetByID(id string) (*models.Role, error) {
	var role models.Role
	err := r.db.First(&role, "role_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *roleRepository) GetByName(name string) (*models.Role, error) {
	var role models.Role
	err := r.db.Where("name = ?", name).First(&role).Error
	if err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *roleRepository) GetByNames(names []string) ([]models.Role, error) {
	var roles []models.Role
	err := r.db.Where("name IN ?", names).Find(&roles).Error
	return roles, err
}

func (r *roleRepository) GetAll() ([]models.Role, error) {
	var roles []models.Role
	err := r.db.Order("security_level desc").Find(&roles).Error
	return roles, err
}

func (r *roleRepository) Update(role *models.Role) error {
	res := r.db.Model(&models.Role{}).
		Where("role_id = ?", role.RoleID).
		Updates(map[string]interface{}{
			"name":           role.Name,
			"security_level": role.SecurityLevel,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *roleRepository) Delete(id string) error {
	res := r.db.Delete(&models.Role{}, "role_id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
