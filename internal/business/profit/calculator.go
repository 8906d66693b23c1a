package profit

import (
	"context"
	"fmt"
	"math"

	"github.com/cocoozhong/logistics-calculator-v2/pkg/errorutil"
)

// 计算类型，同时作为历史记录的去重维度之一
const (
	TypeNPoint      = "n-point"      // N点售价：给定成本与利润率求售价
	TypeProfitPoint = "profit-point" // 赚几个点：给定成本与售价求利润率
)

// NPointInputs N点售价计算输入
type NPointInputs struct {
	Cost       float64 `json:"cost"`
	ProfitRate float64 `json:"profit_rate"`
}

// NPointOutputs N点售价计算结果
type NPointOutputs struct {
	Profit float64 `json:"profit"`
	Price  float64 `json:"price"`
}

// ProfitPointInputs 赚几个点计算输入
type ProfitPointInputs struct {
	Cost  float64 `json:"cost"`
	Price float64 `json:"price"`
}

// ProfitPointOutputs 赚几个点计算结果
type ProfitPointOutputs struct {
	ProfitRate float64 `json:"profit_rate"`
}

// CalculateNPointPrice N点售价计算
// 售价 = 成本 / (1 - 利润率/100)，利润 = 售价 - 成本，结果保留两位小数
// 成本非正、利润率为负或达到 100 均为非法输入
func CalculateNPointPrice(in NPointInputs) (*NPointOutputs, error) {
	if in.Cost <= 0 {
		return nil, errorutil.NonRetriable("成本必须大于0")
	}
	if in.ProfitRate < 0 || in.ProfitRate >= 100 {
		return nil, errorutil.NonRetriable("利润率必须在 [0, 100) 区间内")
	}

	price := in.Cost / (1 - in.ProfitRate/100)
	profit := price - in.Cost

	return &NPointOutputs{
		Profit: round2(profit),
		Price:  round2(price),
	}, nil
}

// CalculateProfitPoint 赚几个点计算
// 利润率 = (售价 - 成本) / 售价 × 100，保留两位小数；售价低于成本时结果为负
func CalculateProfitPoint(in ProfitPointInputs) (*ProfitPointOutputs, error) {
	if in.Cost <= 0 {
		return nil, errorutil.NonRetriable("成本必须大于0")
	}
	if in.Price <= 0 {
		return nil, errorutil.NonRetriable("售价必须大于0")
	}

	rate := (in.Price - in.Cost) / in.Price * 100

	return &ProfitPointOutputs{ProfitRate: round2(rate)}, nil
}

// FormatPrice 价格展示格式化（两位小数）
func FormatPrice(price float64) string {
	return fmt.Sprintf("%.2f", price)
}

// CopyPrice 将计算结果按展示格式写入剪贴板
func CopyPrice(ctx context.Context, clip Clipboard, price float64) error {
	if clip == nil {
		return errorutil.NonRetriable("剪贴板不可用")
	}
	return clip.Copy(ctx, FormatPrice(price))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
