package service

import (
	"context"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/vantage-admin/internal/cache"
	"github.com/vantage-admin/internal/constants"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
)

// CPUInfo CPU 使用情况
type CPUInfo struct {
	CoreNum     int     `json:"cpuNum"`
	UsedPercent float64 `json:"used"`
}

// MemInfo 内存使用情况
type MemInfo struct {
	Total       uint64  `json:"total"`
	Used        uint64  `json:"used"`
	Free        uint64  `json:"free"`
	UsedPercent float64 `json:"usage"`
}

// HostInfo 主机信息
type HostInfo struct {
	Hostname   string `json:"computerName"`
	OS         string `json:"osName"`
	Arch       string `json:"osArch"`
	IP         string `json:"computerIp"`
	UptimeSecs uint64 `json:"uptime"`
}

// DiskInfo 磁盘分区使用情况
type DiskInfo struct {
	Mountpoint  string  `json:"dirName"`
	Fstype      string  `json:"sysTypeName"`
	Total       uint64  `json:"total"`
	Used        uint64  `json:"used"`
	Free        uint64  `json:"free"`
	UsedPercent float64 `json:"usage"`
}

// GoRuntimeInfo Go 运行时信息
type GoRuntimeInfo struct {
	Version    string `json:"version"`
	Goroutines int    `json:"goroutines"`
	HeapAlloc  uint64 `json:"heapAlloc"`
	NumGC      uint32 `json:"numGc"`
	StartTime  string `json:"startTime"`
}

// ServerInfo 服务器监控汇总
type ServerInfo struct {
	CPU   CPUInfo       `json:"cpu"`
	Mem   MemInfo       `json:"mem"`
	Host  HostInfo      `json:"sys"`
	Disks []DiskInfo    `json:"sysFiles"`
	Go    GoRuntimeInfo `json:"go"`
}

// CacheOverview 缓存服务概览
type CacheOverview struct {
	Info    map[string]string `json:"info"`
	DBSize  int64             `json:"dbSize"`
	Enabled bool              `json:"enabled"`
}

// CacheNameEntry 业务缓存分组
type CacheNameEntry struct {
	CacheName string `json:"cacheName"`
	Remark    string `json:"remark"`
}

var processStart = time.Now()

// cacheNames 对外展示的业务缓存分组
var cacheNames = []CacheNameEntry{
	{CacheName: constants.CacheKeyBlacklist, Remark: "令牌黑名单"},
	{CacheName: constants.CacheKeyOnline, Remark: "在线会话"},
	{CacheName: constants.CacheKeyConfig, Remark: "参数配置"},
	{CacheName: constants.CacheKeyDictData, Remark: "字典数据"},
	{CacheName: constants.CacheKeyAuthPerm, Remark: "权限快照"},
}

// MonitorService 服务器与缓存监控服务
type MonitorService struct{}

// NewMonitorService 创建监控服务
func NewMonitorService() *MonitorService {
	return &MonitorService{}
}

// ServerInfo 采集服务器指标
// 单项采集失败不影响整体返回
func (s *MonitorService) ServerInfo(ctx context.Context) *ServerInfo {
	info := &ServerInfo{}

	info.CPU.CoreNum = runtime.NumCPU()
	if percents, err := cpu.PercentWithContext(ctx, 200*time.Millisecond, false); err == nil && len(percents) > 0 {
		info.CPU.UsedPercent = percents[0]
	}

	if vm, err := mem.VirtualMemoryWithContext(ctx); err == nil {
		info.Mem = MemInfo{
			Total:       vm.Total,
			Used:        vm.Used,
			Free:        vm.Available,
			UsedPercent: vm.UsedPercent,
		}
	}

	info.Host.Arch = runtime.GOARCH
	if hostname, err := os.Hostname(); err == nil {
		info.Host.Hostname = hostname
	}
	if hi, err := host.InfoWithContext(ctx); err == nil {
		info.Host.OS = hi.Platform + " " + hi.PlatformVersion
		info.Host.UptimeSecs = hi.Uptime
	}

	if partitions, err := disk.PartitionsWithContext(ctx, false); err == nil {
		for _, partition := range partitions {
			usage, err := disk.UsageWithContext(ctx, partition.Mountpoint)
			if err != nil {
				continue
			}
			info.Disks = append(info.Disks, DiskInfo{
				Mountpoint:  partition.Mountpoint,
				Fstype:      partition.Fstype,
				Total:       usage.Total,
				Used:        usage.Used,
				Free:        usage.Free,
				UsedPercent: usage.UsedPercent,
			})
		}
	}

	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	info.Go = GoRuntimeInfo{
		Version:    runtime.Version(),
		Goroutines: runtime.NumGoroutine(),
		HeapAlloc:  ms.HeapAlloc,
		NumGC:      ms.NumGC,
		StartTime:  processStart.Format("2006-01-02 15:04:05"),
	}
	return info
}

// CacheOverview 缓存服务概览
func (s *MonitorService) CacheOverview(ctx context.Context) (*CacheOverview, error) {
	overview := &CacheOverview{Enabled: cache.Enabled(), Info: map[string]string{}}
	if !overview.Enabled {
		return overview, nil
	}
	raw, err := cache.Info(ctx)
	if err != nil {
		return nil, err
	}
	overview.Info = parseRedisInfo(raw)
	size, err := cache.DBSize(ctx)
	if err != nil {
		return nil, err
	}
	overview.DBSize = size
	return overview, nil
}

// CacheNames 业务缓存分组列表
func (s *MonitorService) CacheNames() []CacheNameEntry {
	return cacheNames
}

// CacheKeys 某分组下全部键
func (s *MonitorService) CacheKeys(ctx context.Context, cacheName string) ([]string, error) {
	return cache.Keys(ctx, cacheName+":*")
}

// CacheValue 读取单个键的原始值
func (s *MonitorService) CacheValue(ctx context.Context, cacheKey string) (string, error) {
	value, hit, err := cache.GetString(ctx, cacheKey)
	if err != nil {
		return "", err
	}
	if !hit {
		return "", ErrNotFound
	}
	return value, nil
}

// ClearCacheName 清空某分组
func (s *MonitorService) ClearCacheName(ctx context.Context, cacheName string) error {
	return cache.DelPattern(ctx, cacheName+":*")
}

// ClearCacheAll 清空全部业务缓存分组
func (s *MonitorService) ClearCacheAll(ctx context.Context) error {
	for _, entry := range cacheNames {
		if err := cache.DelPattern(ctx, entry.CacheName+":*"); err != nil {
			return err
		}
	}
	return nil
}

func parseRedisInfo(raw string) map[string]string {
	out := make(map[string]string)
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, ":", 2)
		if len(parts) != 2 {
			continue
		}
		out[parts[0]] = parts[1]
	}
	return out
}
