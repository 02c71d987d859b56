package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/vantage-admin/internal/constants"
)

const permSnapshotTTL = 10 * time.Minute

// UserPermSnapshot 用户权限快照
// 角色或菜单授权变更后由服务层主动失效
type UserPermSnapshot struct {
	UserID    uint     `json:"userId"`
	Roles     []string `json:"roles"`
	Perms     []string `json:"perms"`
	UpdatedAt int64    `json:"updatedAt"`
}

func permSnapshotKey(userID uint) string {
	return fmt.Sprintf("%s:%d", constants.CacheKeyAuthPerm, userID)
}

// GetUserPermSnapshot 获取用户权限快照
func GetUserPermSnapshot(ctx context.Context, userID uint) (*UserPermSnapshot, bool, error) {
	if userID == 0 {
		return nil, false, nil
	}
	var snapshot UserPermSnapshot
	hit, err := GetJSON(ctx, permSnapshotKey(userID), &snapshot)
	if err != nil || !hit {
		return nil, hit, err
	}
	return &snapshot, true, nil
}

// SetUserPermSnapshot 写入用户权限快照
func SetUserPermSnapshot(ctx context.Context, snapshot *UserPermSnapshot) error {
	if snapshot == nil || snapshot.UserID == 0 {
		return nil
	}
	snapshot.UpdatedAt = time.Now().Unix()
	return SetJSON(ctx, permSnapshotKey(snapshot.UserID), snapshot, permSnapshotTTL)
}

// DelUserPermSnapshot 删除用户权限快照
func DelUserPermSnapshot(ctx context.Context, userID uint) error {
	if userID == 0 {
		return nil
	}
	return Del(ctx, permSnapshotKey(userID))
}
