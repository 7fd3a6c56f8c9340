package algorithm

import "math"

// ETAPredictor 送达时间预测器
// 确定性启发式模型：行驶时间按距离线性估算，叠加交通/星期/骑手效率系数，
// 再加上出餐时长与取送缓冲。不做在线学习。
type ETAPredictor struct {
	config ETAConfig
}

// NewETAPredictor 创建预测器
func NewETAPredictor(config ETAConfig) *ETAPredictor {
	return &ETAPredictor{config: config}
}

// Predict 预测送达时间
func (p *ETAPredictor) Predict(params PredictParams) PredictionResult {
	distanceKm := DistanceKm(params.Pickup, params.Delivery)

	// 行驶时间：基础耗时 × 交通系数 × 星期系数 × 骑手效率系数
	travel := distanceKm * p.config.BaseMinPerKm
	travel *= TrafficMultiplier(params.When)
	travel *= DayOfWeekMultiplier(params.When)
	travel *= driverEfficiency(params.DriverRating)

	prep := p.config.DefaultPrepMinutes
	if params.PrepMinutes != nil {
		prep = *params.PrepMinutes
	}

	distanceBuffer := distanceKm * p.config.DistanceBufferKm

	breakdown := PredictionBreakdown{
		TravelTime:     travel,
		PrepTime:       prep,
		PickupBuffer:   p.config.PickupBufferMin,
		DeliveryBuffer: p.config.DeliveryBufferMin,
		DistanceBuffer: distanceBuffer,
	}

	estimate := travel + prep + breakdown.PickupBuffer + breakdown.DeliveryBuffer + distanceBuffer

	confidence := p.confidence(params, distanceKm)

	// 置信度越高区间越窄
	margin := estimate * (0.25 - confidence*0.10)
	rng := PredictionRange{
		Min: math.Max(0, estimate-margin),
		Max: estimate + margin,
	}

	return PredictionResult{
		EstimatedMinutes: estimate,
		Confidence:       confidence,
		Breakdown:        breakdown,
		Range:            rng,
	}
}

// confidence 从 0.7 起步，已知信息越多越高，封顶 0.95
func (p *ETAPredictor) confidence(params PredictParams, distanceKm float64) float64 {
	confidence := 0.7
	if params.PrepMinutes != nil {
		confidence += 0.1
	}
	if params.DriverRating != nil {
		confidence += 0.1
	}
	if distanceKm < 10 {
		confidence += 0.05
	}
	return math.Min(confidence, 0.95)
}

// driverEfficiency 评分高于 3 的骑手线性缩短行驶时间，最多缩短 10%
func driverEfficiency(rating *float64) float64 {
	if rating == nil || *rating <= 3 {
		return 1.0
	}
	return math.Max(0.9, 1-(*rating-3)*0.05)
}
