package shared

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// ParsePagination 解析 pageNum/pageSize 查询参数并归一化。
func ParsePagination(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("pageNum", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))
	return NormalizePagination(page, pageSize)
}

// NormalizePagination 归一化分页参数。
func NormalizePagination(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 10
	}
	if pageSize > 100 {
		pageSize = 100
	}
	return page, pageSize
}

// ParseIDs 解析逗号分隔的主键串（如 "1,2,3"）。
func ParseIDs(raw string) []uint {
	parts := strings.Split(raw, ",")
	ids := make([]uint, 0, len(parts))
	for _, part := range parts {
		value, err := strconv.ParseUint(strings.TrimSpace(part), 10, 64)
		if err != nil || value == 0 {
			continue
		}
		ids = append(ids, uint(value))
	}
	return ids
}

// ParseUintParam 解析路径中的 uint 参数。
func ParseUintParam(c *gin.Context, name string) (uint, bool) {
	value, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(value), true
}

// ParseTimeRange 解析 beginTime/endTime 查询参数。
func ParseTimeRange(c *gin.Context) (*time.Time, *time.Time) {
	const layout = "2006-01-02 15:04:05"
	var begin, end *time.Time
	if raw := strings.TrimSpace(c.Query("beginTime")); raw != "" {
		if t, err := time.ParseInLocation(layout, raw, time.Local); err == nil {
			begin = &t
		}
	}
	if raw := strings.TrimSpace(c.Query("endTime")); raw != "" {
		if t, err := time.ParseInLocation(layout, raw, time.Local); err == nil {
			end = &t
		}
	}
	return begin, end
}
