package accountfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"wander/internal/repositories"
	"wander/internal/services"
)

var Module = fx.Provide(
	provideAccountService, provideUserRepo)

func provideUserRepo(db *gorm.DB) repositories.UserRepository {
	return repositories.NewUserRepository(db)
}

func provideAccountService(userRepo repositories.UserRepository) services.AccountService {
	return services.NewAccountService(userRepo)
}
