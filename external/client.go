// Package external 封装对外部组合API的HTTP调用
package external

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/BerniceZTT/portfolio_end/models"
	"github.com/BerniceZTT/portfolio_end/utils"
)

// Client 外部组合API客户端
// 不做重试、不做缓存，失败直接上抛
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient 创建外部API客户端
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// ListProjects 获取全部项目列表
// GET /api/projects/
func (c *Client) ListProjects(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	if err := c.getJSON(ctx, "/api/projects/", nil, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// ListProjectsRaw 获取项目列表的原始响应体
// 代理端点原样透传，不经过结构体解码，避免丢失上游新增字段
func (c *Client) ListProjectsRaw(ctx context.Context) ([]byte, error) {
	fullURL := c.BaseURL + "/api/projects/"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		utils.LogUpstreamCall(http.MethodGet, fullURL, 0, time.Since(start))
		return nil, fmt.Errorf("调用外部API失败: %w", err)
	}
	defer resp.Body.Close()

	utils.LogUpstreamCall(http.MethodGet, fullURL, resp.StatusCode, time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("外部API返回状态: %s", resp.Status)
	}

	return io.ReadAll(resp.Body)
}

// DashboardAssessments 获取组织评估看板数据
// GET /api/organizational-assessments/dashboard
func (c *Client) DashboardAssessments(ctx context.Context, assessedPersonName, assessmentLevel string) ([]models.Assessment, error) {
	params := url.Values{}
	if assessedPersonName != "" {
		params.Set("assessedPersonName", assessedPersonName)
	}
	if assessmentLevel != "" {
		params.Set("assessmentLevel", assessmentLevel)
	}

	var assessments []models.Assessment
	if err := c.getJSON(ctx, "/api/organizational-assessments/dashboard", params, &assessments); err != nil {
		return nil, err
	}
	return assessments, nil
}

// GenerateAssessment 触发外部(重新)生成评估
// POST /api/organizational-assessments/generate
func (c *Client) GenerateAssessment(ctx context.Context, req models.GenerateAssessmentRequest) (map[string]interface{}, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.BaseURL+"/api/organizational-assessments/generate", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		utils.LogUpstreamCall(http.MethodPost, httpReq.URL.String(), 0, time.Since(start))
		return nil, fmt.Errorf("调用评估生成接口失败: %w", err)
	}
	defer resp.Body.Close()

	utils.LogUpstreamCall(http.MethodPost, httpReq.URL.String(), resp.StatusCode, time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("评估生成接口返回状态: %s", resp.Status)
	}

	// 上游对响应结构没有约定，按通用JSON解析
	var result map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("解析评估生成响应失败: %w", err)
	}

	return result, nil
}

// getJSON 发起GET请求并解析JSON响应
func (c *Client) getJSON(ctx context.Context, path string, params url.Values, out interface{}) error {
	fullURL := c.BaseURL + path
	if len(params) > 0 {
		fullURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		utils.LogUpstreamCall(http.MethodGet, fullURL, 0, time.Since(start))
		return fmt.Errorf("调用外部API失败: %w", err)
	}
	defer resp.Body.Close()

	utils.LogUpstreamCall(http.MethodGet, fullURL, resp.StatusCode, time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("外部API返回状态: %s", resp.Status)
	}

	// 上游偶尔会在出错时返回HTML错误页，这里会解析失败并上抛
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("解析外部API响应失败: %w", err)
	}

	return nil
}
