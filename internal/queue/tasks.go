package queue

import (
	"encoding/json"
	"time"

	"github.com/vantage-admin/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskLoginLogSave 登录日志落库任务
	TaskLoginLogSave = constants.TaskLoginLogSave
	// TaskOperLogSave 操作日志落库任务
	TaskOperLogSave = constants.TaskOperLogSave
)

// LoginLogPayload 登录日志任务载荷
type LoginLogPayload struct {
	UserName  string    `json:"userName"`
	Ipaddr    string    `json:"ipaddr"`
	Browser   string    `json:"browser"`
	OS        string    `json:"os"`
	Status    string    `json:"status"`
	Msg       string    `json:"msg"`
	LoginTime time.Time `json:"loginTime"`
}

// OperLogPayload 操作日志任务载荷
type OperLogPayload struct {
	Title         string    `json:"title"`
	BusinessType  int       `json:"businessType"`
	Method        string    `json:"method"`
	RequestMethod string    `json:"requestMethod"`
	OperName      string    `json:"operName"`
	OperURL       string    `json:"operUrl"`
	OperIP        string    `json:"operIp"`
	OperParam     string    `json:"operParam"`
	JSONResult    string    `json:"jsonResult"`
	Status        int       `json:"status"`
	ErrorMsg      string    `json:"errorMsg"`
	OperTime      time.Time `json:"operTime"`
	CostTime      int64     `json:"costTime"`
}

// NewLoginLogTask 创建登录日志任务
func NewLoginLogTask(payload LoginLogPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskLoginLogSave, body), nil
}

// NewOperLogTask 创建操作日志任务
func NewOperLogTask(payload OperLogPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskOperLogSave, body), nil
}
