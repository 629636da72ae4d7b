package sso

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/ZhibangYue/The-backend-of-Stranger-Together/config"
)

var (
	// ErrResolveFailed 统一认证拒绝了该组凭据
	ErrResolveFailed = errors.New("统一认证失败")
	// ErrUnavailable 统一认证服务不可达
	ErrUnavailable = errors.New("统一认证服务不可用")
)

// Identity 统一认证返回的权威身份信息
type Identity struct {
	StudentNumber string `json:"student_number"`
	Name          string `json:"name"`
}

// Resolver 外部身份解析接口
// 前台登录不在本地存密码，凭据转发给统一认证换取 (学工号, 姓名)
type Resolver interface {
	Resolve(ctx context.Context, username, password string) (*Identity, error)
}

// Client 统一认证 HTTP 客户端
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient 创建统一认证客户端
func NewClient(cfg *config.SSOConfig, logger *zap.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger,
	}
}

// Resolve 用学工号+密码向统一认证换取身份信息
func (c *Client) Resolve(ctx context.Context, username, password string) (*Identity, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/auth", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("构造统一认证请求失败: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("统一认证请求失败", zap.Error(err))
		return nil, ErrUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, ErrResolveFailed
	}
	if resp.StatusCode != http.StatusOK {
		c.logger.Error("统一认证返回异常状态", zap.Int("status", resp.StatusCode))
		return nil, ErrUnavailable
	}

	var body struct {
		Code int      `json:"code"`
		Data Identity `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		c.logger.Error("解析统一认证响应失败", zap.Error(err))
		return nil, ErrUnavailable
	}
	if body.Code != 0 || body.Data.StudentNumber == "" {
		return nil, ErrResolveFailed
	}

	return &body.Data, nil
}
