package mysql

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/cocoozhong/logistics-calculator-v2/internal/business/profit"
)

// historyCap 历史记录上限，与内存实现保持一致
const historyCap = 5

// calculationRecordRow 计算历史表结构
type calculationRecordRow struct {
	ID        string         `gorm:"column:id;primaryKey;size:36"`
	Type      string         `gorm:"column:type;size:32;index"`
	Inputs    datatypes.JSON `gorm:"column:inputs;type:json"`
	Outputs   datatypes.JSON `gorm:"column:outputs;type:json"`
	Timestamp time.Time      `gorm:"column:timestamp;index"`
}

// TableName 指定表名
func (calculationRecordRow) TableName() string {
	return "calculation_records"
}

// RecordDAO 计算历史数据访问对象（profit.Store 的 MySQL 实现）
type RecordDAO struct {
	db *gorm.DB
}

// NewRecordDAO 创建 RecordDAO 实例
func NewRecordDAO(dsn string) (*RecordDAO, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&calculationRecordRow{}); err != nil {
		return nil, fmt.Errorf("failed to migrate calculation_records: %w", err)
	}

	return &RecordDAO{db: db}, nil
}

// Save 保存记录：同类型同输入的记录不重复落库，超出上限删除最旧记录
func (dao *RecordDAO) Save(ctx context.Context, record profit.CalculationRecord) error {
	row, err := toRow(record)
	if err != nil {
		return err
	}

	return dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. 去重检查：逐条比对同类型记录的输入
		var existing []calculationRecordRow
		if err := tx.Where("type = ?", record.Type).Find(&existing).Error; err != nil {
			return fmt.Errorf("failed to query existing records: %w", err)
		}
		for _, e := range existing {
			var inputs map[string]float64
			if err := json.Unmarshal([]byte(e.Inputs), &inputs); err != nil {
				continue
			}
			if equalInputs(inputs, record.Inputs) {
				return nil
			}
		}

		// 2. 插入新记录
		if err := tx.Create(row).Error; err != nil {
			return fmt.Errorf("failed to create record: %w", err)
		}

		// 3. 封顶：删除第 5 条之后的旧记录
		var stale []calculationRecordRow
		if err := tx.Order("timestamp desc").Offset(historyCap).Find(&stale).Error; err != nil {
			return fmt.Errorf("failed to query stale records: %w", err)
		}
		for _, s := range stale {
			if err := tx.Delete(&calculationRecordRow{}, "id = ?", s.ID).Error; err != nil {
				return fmt.Errorf("failed to delete stale record: %w", err)
			}
		}

		return nil
	})
}

// List 按时间倒序返回最近的记录
func (dao *RecordDAO) List(ctx context.Context) ([]profit.CalculationRecord, error) {
	var rows []calculationRecordRow
	if err := dao.db.WithContext(ctx).
		Order("timestamp desc").
		Limit(historyCap).
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}

	records := make([]profit.CalculationRecord, 0, len(rows))
	for _, row := range rows {
		record, err := fromRow(row)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

// Clear 清空历史
func (dao *RecordDAO) Clear(ctx context.Context) error {
	if err := dao.db.WithContext(ctx).
		Where("1 = 1").
		Delete(&calculationRecordRow{}).Error; err != nil {
		return fmt.Errorf("failed to clear records: %w", err)
	}
	return nil
}

// Close 关闭数据库连接
func (dao *RecordDAO) Close() error {
	sqlDB, err := dao.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func toRow(record profit.CalculationRecord) (*calculationRecordRow, error) {
	inputs, err := json.Marshal(record.Inputs)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal inputs: %w", err)
	}
	outputs, err := json.Marshal(record.Outputs)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal outputs: %w", err)
	}
	return &calculationRecordRow{
		ID:        record.ID,
		Type:      record.Type,
		Inputs:    datatypes.JSON(inputs),
		Outputs:   datatypes.JSON(outputs),
		Timestamp: record.Timestamp,
	}, nil
}

func fromRow(row calculationRecordRow) (profit.CalculationRecord, error) {
	var inputs, outputs map[string]float64
	if err := json.Unmarshal([]byte(row.Inputs), &inputs); err != nil {
		return profit.CalculationRecord{}, fmt.Errorf("failed to unmarshal inputs: %w", err)
	}
	if err := json.Unmarshal([]byte(row.Outputs), &outputs); err != nil {
		return profit.CalculationRecord{}, fmt.Errorf("failed to unmarshal outputs: %w", err)
	}
	return profit.CalculationRecord{
		ID:        row.ID,
		Type:      row.Type,
		Inputs:    inputs,
		Outputs:   outputs,
		Timestamp: row.Timestamp,
	}, nil
}

func equalInputs(a, b map[string]float64) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if bv, ok := b[k]; !ok || bv != v {
			return false
		}
	}
	return true
}
