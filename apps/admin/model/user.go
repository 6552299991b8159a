package model

import "time"

// UserRole 员工角色，封闭枚举，API 层拒绝未知值
type UserRole string

const (
	RoleSuperAdmin        UserRole = "super_admin"
	RoleOperationsManager UserRole = "operations_manager"
	RoleProductManager    UserRole = "product_manager"
	RoleCustomerService   UserRole = "customer_service"
	RoleSalesRep          UserRole = "sales_representative"
	RoleWarehouseManager  UserRole = "warehouse_manager"
	RoleTechnicalSupport  UserRole = "technical_support"
)

func (r UserRole) Valid() bool {
	switch r {
	case RoleSuperAdmin, RoleOperationsManager, RoleProductManager,
		RoleCustomerService, RoleSalesRep, RoleWarehouseManager, RoleTechnicalSupport:
		return true
	}
	return false
}

// User 后台员工账号
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"username"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"type:varchar(255);not null" json:"-"` // 永不序列化
	FirstName string    `gorm:"type:varchar(100)" json:"firstName"`
	LastName  string    `gorm:"type:varchar(100)" json:"lastName"`
	Role      UserRole  `gorm:"type:varchar(32);not null" json:"role"`
	IsActive  bool      `gorm:"not null" json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}
