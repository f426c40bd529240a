package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestGetAssessmentDashboardProxy(t *testing.T) {
	upstream := newUpstream(t)
	defer upstream.Close()
	router := newTestRouter(upstream.URL)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/organizational-assessments/dashboard?assessedPersonName=Priya", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var assessments []map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &assessments); err != nil {
		t.Fatalf("响应应为评估数组: %v", err)
	}
	if len(assessments) != 1 {
		t.Errorf("评估数 = %d, want 1", len(assessments))
	}
}

func TestGetPortfolioTrendsFallback(t *testing.T) {
	// 上游评估没有trends数组，应退化为单点序列
	upstream := newUpstream(t)
	defer upstream.Close()
	router := newTestRouter(upstream.URL)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/trends", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var body struct {
		Data []struct {
			Date  string `json:"date"`
			Green int    `json:"green"`
			Total int    `json:"total"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("解析响应失败: %v", err)
	}
	if len(body.Data) != 1 {
		t.Fatalf("退化序列应有1个点, got %d", len(body.Data))
	}
	// total = 7 - 1(error)
	if body.Data[0].Total != 6 || body.Data[0].Green != 3 {
		t.Errorf("退化点计数错误: %+v", body.Data[0])
	}
}

func TestGetStrategicOverviewTrailingSpaceKey(t *testing.T) {
	// 上游importanceGroups的键带尾部空格，必须容忍
	upstream := newUpstream(t)
	defer upstream.Close()
	router := newTestRouter(upstream.URL)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/strategic", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var body struct {
		Data struct {
			Found  bool           `json:"found"`
			Counts map[string]int `json:"counts"`
			Total  int            `json:"total"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("解析响应失败: %v", err)
	}
	if !body.Data.Found || body.Data.Total != 3 {
		t.Errorf("战略分组提取错误: %+v", body.Data)
	}
}

func TestGenerateAssessmentValidation(t *testing.T) {
	upstream := newUpstream(t)
	defer upstream.Close()
	router := newTestRouter(upstream.URL)

	// 缺少必填字段
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/organizational-assessments/generate",
		strings.NewReader(`{"llmProvider":"openai"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("缺少必填字段应返回400, got %d", w.Code)
	}
}

func TestGenerateAssessmentForwards(t *testing.T) {
	upstream := newUpstream(t)
	defer upstream.Close()
	router := newTestRouter(upstream.URL)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/organizational-assessments/generate",
		strings.NewReader(`{"assessmentLevel":"tower","assessedPersonName":"Priya","reAssess":true}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			JobID    string                 `json:"jobId"`
			Upstream map[string]interface{} `json:"upstream"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("解析响应失败: %v", err)
	}
	if !body.Success || body.Data.JobID == "" {
		t.Errorf("响应缺少jobId: %+v", body)
	}
	if body.Data.Upstream["status"] != "accepted" {
		t.Errorf("上游响应未透传: %+v", body.Data.Upstream)
	}
}

func TestGenerateAssessmentUpstreamDown(t *testing.T) {
	router := newTestRouter("http://127.0.0.1:1")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/organizational-assessments/generate",
		strings.NewReader(`{"assessmentLevel":"tower","assessedPersonName":"Priya"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("上游不可达应返回500, got %d", w.Code)
	}
}
