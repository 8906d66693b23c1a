package profit

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// historyCap 历史记录上限，超出后淘汰最旧的记录
const historyCap = 5

// CalculationRecord 一次计算的完整留痕
// Inputs 同时作为去重键：相同类型且输入相同的记录只保留一条
type CalculationRecord struct {
	ID        string             `json:"id"`
	Type      string             `json:"type"`
	Inputs    map[string]float64 `json:"inputs"`
	Outputs   map[string]float64 `json:"outputs"`
	Timestamp time.Time          `json:"timestamp"`
}

// Store 历史记录存储接口
// 实现方保证：容量封顶、最新在前、按 (类型, 输入) 去重
type Store interface {
	Save(ctx context.Context, record CalculationRecord) error
	List(ctx context.Context) ([]CalculationRecord, error)
	Clear(ctx context.Context) error
}

// Clipboard 剪贴板能力接口，由调用方注入
type Clipboard interface {
	Copy(ctx context.Context, text string) error
}

// NewNPointRecord 由一次 N 点计算构造历史记录
func NewNPointRecord(in NPointInputs, out *NPointOutputs) CalculationRecord {
	return CalculationRecord{
		ID:        uuid.NewString(),
		Type:      TypeNPoint,
		Inputs:    map[string]float64{"cost": in.Cost, "profit_rate": in.ProfitRate},
		Outputs:   map[string]float64{"profit": out.Profit, "price": out.Price},
		Timestamp: time.Now(),
	}
}

// NewProfitPointRecord 由一次赚几个点计算构造历史记录
func NewProfitPointRecord(in ProfitPointInputs, out *ProfitPointOutputs) CalculationRecord {
	return CalculationRecord{
		ID:        uuid.NewString(),
		Type:      TypeProfitPoint,
		Inputs:    map[string]float64{"cost": in.Cost, "price": in.Price},
		Outputs:   map[string]float64{"profit_rate": out.ProfitRate},
		Timestamp: time.Now(),
	}
}

// sameInputs 判断两条记录是否为同类型同输入
func sameInputs(a, b CalculationRecord) bool {
	if a.Type != b.Type || len(a.Inputs) != len(b.Inputs) {
		return false
	}
	for k, v := range a.Inputs {
		if bv, ok := b.Inputs[k]; !ok || bv != v {
			return false
		}
	}
	return true
}

// MemoryStore 内存历史记录存储（测试与单机场景）
type MemoryStore struct {
	mu      sync.Mutex
	records []CalculationRecord
}

// NewMemoryStore 创建内存存储
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Save 保存记录：重复输入不落库，新记录插到最前，超出上限截断
func (s *MemoryStore) Save(ctx context.Context, record CalculationRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.records {
		if sameInputs(existing, record) {
			return nil
		}
	}

	s.records = append([]CalculationRecord{record}, s.records...)
	if len(s.records) > historyCap {
		s.records = s.records[:historyCap]
	}
	return nil
}

// List 按时间倒序返回全部记录
func (s *MemoryStore) List(ctx context.Context) ([]CalculationRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]CalculationRecord, len(s.records))
	copy(out, s.records)
	return out, nil
}

// Clear 清空历史
func (s *MemoryStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = nil
	return nil
}
