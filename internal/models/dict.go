package models

import "time"

// SysDictType 字典类型表
type SysDictType struct {
	DictID    uint      `gorm:"primarykey;column:dict_id" json:"dictId"`               // 主键
	DictName  string    `gorm:"column:dict_name" json:"dictName"`                      // 字典名称
	DictType  string    `gorm:"column:dict_type;uniqueIndex;not null" json:"dictType"` // 字典类型键
	Status    string    `gorm:"column:status;default:'0'" json:"status"`               // 状态
	Remark    string    `gorm:"column:remark" json:"remark"`                           // 备注
	CreatedAt time.Time `json:"createTime"`                                            // 创建时间
	UpdatedAt time.Time `json:"updateTime"`                                            // 更新时间
}

// TableName 指定表名
func (SysDictType) TableName() string {
	return "sys_dict_type"
}

// SysDictData 字典数据表
type SysDictData struct {
	DictCode  uint      `gorm:"primarykey;column:dict_code" json:"dictCode"`    // 主键
	DictSort  int       `gorm:"column:dict_sort;default:0" json:"dictSort"`     // 显示顺序
	DictLabel string    `gorm:"column:dict_label" json:"dictLabel"`             // 字典标签
	DictValue string    `gorm:"column:dict_value" json:"dictValue"`             // 字典键值
	DictType  string    `gorm:"column:dict_type;index" json:"dictType"`         // 所属类型键
	CSSClass  string    `gorm:"column:css_class" json:"cssClass"`               // 样式属性
	ListClass string    `gorm:"column:list_class" json:"listClass"`             // 表格回显样式
	IsDefault string    `gorm:"column:is_default;default:'N'" json:"isDefault"` // 是否默认（Y/N）
	Status    string    `gorm:"column:status;default:'0'" json:"status"`        // 状态
	Remark    string    `gorm:"column:remark" json:"remark"`                    // 备注
	CreatedAt time.Time `json:"createTime"`                                     // 创建时间
	UpdatedAt time.Time `json:"updateTime"`                                     // 更新时间
}

// TableName 指定表名
func (SysDictData) TableName() string {
	return "sys_dict_data"
}
