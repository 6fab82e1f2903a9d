package e2e_tests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const baseURL = "http://app:8080"

// Client представляет HTTP клиент для тестов
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

// NewClient создает новый тестовый клиент
func NewClient() *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// doRequest выполняет HTTP запрос
func (c *Client) doRequest(method, path string, body interface{}) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	return c.httpClient.Do(req)
}

// register регистрирует профиль и запоминает выданный токен
func (c *Client) register(t *testing.T, profile map[string]interface{}) {
	resp, err := c.doRequest(http.MethodPost, "/auth/register", profile)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var result struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	require.NotEmpty(t, result.Token)

	c.token = result.Token
}

// errorCode читает код ошибки из тела ответа
func errorCode(t *testing.T, resp *http.Response) string {
	var result struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return result.Error.Code
}

// waitForService ждет, пока сервис станет доступным
func waitForService(t *testing.T) {
	client := NewClient()
	maxAttempts := 30
	for i := 0; i < maxAttempts; i++ {
		resp, err := client.httpClient.Get(baseURL + "/health")
		if err == nil && resp.StatusCode == http.StatusOK {
			resp.Body.Close()
			return
		}
		if resp != nil {
			resp.Body.Close()
		}
		time.Sleep(1 * time.Second)
	}
	t.Fatal("Service did not become available in time")
}

// TestMain выполняется перед всеми тестами
func TestMain(m *testing.M) {
	// Ждем, пока сервис станет доступным
	time.Sleep(3 * time.Second)
	m.Run()
}

// TestHealthCheck проверяет health endpoint
func TestHealthCheck(t *testing.T) {
	waitForService(t)

	client := NewClient()
	resp, err := client.httpClient.Get(baseURL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var result map[string]string
	err = json.NewDecoder(resp.Body).Decode(&result)
	require.NoError(t, err)
	assert.Equal(t, "ok", result["status"])
}

// TestTaskEntryFlow проверяет создание записей с валидацией бюджета дня
func TestTaskEntryFlow(t *testing.T) {
	waitForService(t)
	client := NewClient()

	client.register(t, map[string]interface{}{
		"empId":    "e2e_emp_1",
		"empName":  "Alice",
		"email":    "alice.e2e@example.com",
		"password": "secret123",
		"role":     "employee",
		"teamName": "e2e-alpha",
	})

	task := map[string]interface{}{
		"teamName":  "e2e-alpha",
		"date":      "2024-01-15",
		"empId":     "e2e_emp_1",
		"empName":   "Alice",
		"workType":  "Full-day",
		"timeSpent": "5:00",
		"status":    "In Progress",
		"client":    "Acme",
		"project":   "Phoenix",
	}

	// Первая запись принимается
	resp, err := client.doRequest(http.MethodPost, "/tasks", task)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created struct {
		Task struct {
			TaskID string `json:"taskId"`
		} `json:"task"`
		Validation struct {
			NormalHours string `json:"normalHours"`
			ExtraHours  string `json:"extraHours"`
		} `json:"validation"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.Equal(t, "5:00", created.Validation.NormalHours)
	assert.Equal(t, "0:00", created.Validation.ExtraHours)

	// Вторая запись 5:00 превышает дневной бюджет без Over Time
	resp, err = client.doRequest(http.MethodPost, "/tasks", task)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "DAILY_LIMIT_EXCEEDED", errorCode(t, resp))

	// Добиваем день до 9:00
	task["workType"] = "Half-day"
	task["timeSpent"] = "4:00"
	resp, err = client.doRequest(http.MethodPost, "/tasks", task)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// Теперь Over Time принимается со сплитом 9/2
	task["workType"] = "Over Time"
	task["timeSpent"] = "2:00"
	resp, err = client.doRequest(http.MethodPost, "/tasks", task)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var overtime struct {
		Validation struct {
			NormalHours     string `json:"normalHours"`
			ExtraHours      string `json:"extraHours"`
			TotalDailyHours string `json:"totalDailyHours"`
		} `json:"validation"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&overtime))
	assert.Equal(t, "9:00", overtime.Validation.NormalHours)
	assert.Equal(t, "2:00", overtime.Validation.ExtraHours)
	assert.Equal(t, "11:00", overtime.Validation.TotalDailyHours)

	// Кривой формат времени отклоняется
	task["timeSpent"] = "25:99"
	resp, err = client.doRequest(http.MethodPost, "/tasks", task)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_FORMAT", errorCode(t, resp))
}

// TestAccessControlFlow проверяет запреты доступа между ролями
func TestAccessControlFlow(t *testing.T) {
	waitForService(t)

	alice := NewClient()
	alice.register(t, map[string]interface{}{
		"empId":    "e2e_acl_emp",
		"empName":  "Bob",
		"email":    "bob.e2e@example.com",
		"password": "secret123",
		"role":     "employee",
		"teamName": "e2e-beta",
	})

	// Сотрудник не видит чужие записи
	resp, err := alice.doRequest(http.MethodGet, "/tasks?team_name=e2e-beta&date=2024-01-15&emp_id=other_emp", nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "ACCESS_DENIED", errorCode(t, resp))

	// Admin читает все, но писать не может
	admin := NewClient()
	admin.register(t, map[string]interface{}{
		"empId":    "e2e_acl_admin",
		"empName":  "Root",
		"email":    "root.e2e@example.com",
		"password": "secret123",
		"role":     "admin",
	})

	resp, err = admin.doRequest(http.MethodGet, "/tasks?team_name=e2e-beta&date=2024-01-15", nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = admin.doRequest(http.MethodPost, "/tasks", map[string]interface{}{
		"teamName":  "e2e-beta",
		"date":      "2024-01-15",
		"empId":     "e2e_acl_admin",
		"empName":   "Root",
		"workType":  "Full-day",
		"timeSpent": "1:00",
	})
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "ADMIN_READ_ONLY", errorCode(t, resp))
}

// TestUnauthorizedRequestRejected проверяет, что без токена доступа нет
func TestUnauthorizedRequestRejected(t *testing.T) {
	waitForService(t)

	client := NewClient()
	resp, err := client.doRequest(http.MethodGet, fmt.Sprintf("/tasks?team_name=%s&date=2024-01-15", "e2e-alpha"), nil)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
