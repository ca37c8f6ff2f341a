package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// 教学说明：测试辅助工具
// 这个文件包含集成测试的通用辅助函数，遵循DRY原则（Don't Repeat Yourself）
// 将重复的代码（HTTP请求、JSON解析）封装成可复用的函数

const (
	// BaseURL API基础URL
	BaseURL = "http://localhost:8080/api/v1"
	// Timeout HTTP请求超时时间
	Timeout = 10 * time.Second
)

// Response 统一响应结构
// HTTPStatus是传输层状态码,从响应头读取,不参与JSON解析
type Response struct {
	Code       int             `json:"code"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
	HTTPStatus int             `json:"-"`
}

// UserData 用户响应数据
type UserData struct {
	ID        uint   `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
	Email     string `json:"email"`
}

// LoginData 登录响应数据
type LoginData struct {
	User         UserData `json:"user"`
	AccessToken  string   `json:"access_token"`
	RefreshToken string   `json:"refresh_token"`
}

// BookData 图书响应数据
type BookData struct {
	ID            uint   `json:"id"`
	Title         string `json:"title"`
	Author        string `json:"author"`
	Description   string `json:"description"`
	CoverURL      string `json:"cover_url"`
	OpenLibraryID string `json:"open_library_id"`
	Genre         string `json:"genre"`
}

// UserBookData 书架条目响应数据
type UserBookData struct {
	ID          uint   `json:"id"`
	UserID      uint   `json:"user_id"`
	BookID      uint   `json:"book_id"`
	Shelf       string `json:"shelf"`
	CompletedAt string `json:"completed_at"`
}

// TrackerData 追踪器响应数据
type TrackerData struct {
	ID             uint   `json:"id"`
	UserID         uint   `json:"user_id"`
	Month          string `json:"month"`
	MonthValue     int    `json:"month_value"`
	Year           string `json:"year"`
	TargetBooksNum int    `json:"target_books_num"`
}

// TrackerBookData 追踪器图书响应数据
type TrackerBookData struct {
	ID         uint `json:"id"`
	TrackerID  uint `json:"tracker_id"`
	UserBookID uint `json:"user_book_id"`
	Completed  bool `json:"completed"`
}

// ProgressData 阅读进度响应数据
type ProgressData struct {
	TrackerID            uint    `json:"tracker_id"`
	TargetBooks          int     `json:"target_books"`
	TotalBooks           int     `json:"total_books"`
	CompletedBooks       int     `json:"completed_books"`
	CompletionPercentage float64 `json:"completion_percentage"`
	Month                string  `json:"month"`
	Year                 string  `json:"year"`
}

// ReviewData 书评响应数据
type ReviewData struct {
	ID         uint   `json:"id"`
	UserID     uint   `json:"user_id"`
	BookID     uint   `json:"book_id"`
	Rating     int    `json:"rating"`
	ReviewText string `json:"review_text"`
}

// AverageRatingData 平均评分响应数据
type AverageRatingData struct {
	BookID        uint    `json:"book_id"`
	AverageRating float64 `json:"average_rating"`
	ReviewCount   int     `json:"review_count"`
}

// doJSON 发送HTTP请求并解析JSON响应
func doJSON(t *testing.T, method, url string, data interface{}, token string) *Response {
	var body io.Reader
	if data != nil {
		jsonData, err := json.Marshal(data)
		require.NoError(t, err, "JSON序列化失败")
		body = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequest(method, url, body)
	require.NoError(t, err, "创建HTTP请求失败")

	if data != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	client := &http.Client{Timeout: Timeout}
	resp, err := client.Do(req)
	require.NoError(t, err, "发送HTTP请求失败")
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "读取响应体失败")

	var result Response
	err = json.Unmarshal(respBody, &result)
	require.NoError(t, err, "解析JSON响应失败: %s", string(respBody))

	result.HTTPStatus = resp.StatusCode
	return &result
}

// PostJSON 发送POST请求并解析JSON响应
//
// 教学说明：
// - 使用*testing.T参数，可以在失败时立即终止测试
// - 使用require包进行断言，失败会立即停止（不继续执行）
// - 返回*Response而非error，简化调用方代码
func PostJSON(t *testing.T, url string, data interface{}, token string) *Response {
	return doJSON(t, http.MethodPost, url, data, token)
}

// PutJSON 发送PUT请求并解析JSON响应
func PutJSON(t *testing.T, url string, data interface{}, token string) *Response {
	return doJSON(t, http.MethodPut, url, data, token)
}

// GetJSON 发送GET请求并解析JSON响应
func GetJSON(t *testing.T, url string, token string) *Response {
	return doJSON(t, http.MethodGet, url, nil, token)
}

// DeleteJSON 发送DELETE请求并解析JSON响应
func DeleteJSON(t *testing.T, url string, token string) *Response {
	return doJSON(t, http.MethodDelete, url, nil, token)
}

// GenerateTestEmail 生成唯一的测试邮箱
//
// 教学说明：
// 使用时间戳确保邮箱唯一性，避免测试重复运行时邮箱冲突
func GenerateTestEmail(prefix string) string {
	return fmt.Sprintf("%s_%d@test.com", prefix, time.Now().UnixNano())
}

// GenerateTestUsername 生成唯一的测试用户名
func GenerateTestUsername(prefix string) string {
	return fmt.Sprintf("%s_%d", prefix, time.Now().UnixNano()%1000000000)
}

// RegisterTestUser 注册测试用户并返回用户ID与Token
//
// 教学说明：
// 这是一个"高阶"辅助函数，封装了注册+登录的完整流程
// 简化了测试代码，让测试更关注业务逻辑而非基础设施
func RegisterTestUser(t *testing.T, prefix string) (userID uint, token string) {
	// 1. 注册
	email := GenerateTestEmail(prefix)
	username := GenerateTestUsername(prefix)
	registerReq := map[string]string{
		"first_name": "集成",
		"last_name":  "测试",
		"username":   username,
		"email":      email,
		"password":   "Test1234",
	}

	registerResp := PostJSON(t, BaseURL+"/users/register", registerReq, "")
	require.Equal(t, 0, registerResp.Code, "注册失败: %s", registerResp.Message)

	var userData UserData
	err := json.Unmarshal(registerResp.Data, &userData)
	require.NoError(t, err, "解析注册响应失败")

	// 2. 登录
	loginReq := map[string]string{
		"username_or_email": username,
		"password":          "Test1234",
	}

	loginResp := PostJSON(t, BaseURL+"/users/login", loginReq, "")
	require.Equal(t, 0, loginResp.Code, "登录失败: %s", loginResp.Message)

	var loginData LoginData
	err = json.Unmarshal(loginResp.Data, &loginData)
	require.NoError(t, err, "解析登录响应失败")

	return userData.ID, loginData.AccessToken
}

// CreateTestBook 向目录添加测试图书并返回图书ID
func CreateTestBook(t *testing.T, title string) uint {
	bookReq := map[string]interface{}{
		"title":       title,
		"author":      "测试作者",
		"description": "集成测试用图书",
		"genre":       "FICTION",
	}

	bookResp := PostJSON(t, BaseURL+"/books", bookReq, "")
	require.Equal(t, 0, bookResp.Code, "创建图书失败: %s", bookResp.Message)

	var bookData BookData
	err := json.Unmarshal(bookResp.Data, &bookData)
	require.NoError(t, err, "解析图书响应失败")

	return bookData.ID
}

// AddTestUserBook 把图书加入用户书架并返回条目ID
func AddTestUserBook(t *testing.T, userID, bookID uint, shelf string) uint {
	req := map[string]interface{}{
		"user_id": userID,
		"book_id": bookID,
	}
	if shelf != "" {
		req["shelf"] = shelf
	}

	resp := PostJSON(t, BaseURL+"/userbooks", req, "")
	require.Equal(t, 0, resp.Code, "添加书架条目失败: %s", resp.Message)

	var data UserBookData
	err := json.Unmarshal(resp.Data, &data)
	require.NoError(t, err, "解析书架条目响应失败")

	return data.ID
}

// CreateTestTracker 创建测试追踪器并返回追踪器ID
func CreateTestTracker(t *testing.T, userID uint, month int, year string, target int) uint {
	req := map[string]interface{}{
		"user_id":          userID,
		"month":            month,
		"year":             year,
		"target_books_num": target,
	}

	resp := PostJSON(t, BaseURL+"/monthly-tracker", req, "")
	require.Equal(t, 0, resp.Code, "创建追踪器失败: %s", resp.Message)

	var data TrackerData
	err := json.Unmarshal(resp.Data, &data)
	require.NoError(t, err, "解析追踪器响应失败")

	return data.ID
}
