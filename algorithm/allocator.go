package algorithm

import (
	"math"
	"sort"
	"time"
)

// 派单失败原因，调用方依赖字符串区分"扩大半径重试"与"排队等待"
const (
	ReasonNoAvailableDrivers = "No available drivers found"
	ReasonNoDriversInRange   = "No drivers within range"
	ReasonLowScores          = "No suitable driver found (low scores)"
)

// DriverAllocator 订单派单评分引擎
// 对每个候选骑手计算七项子分的加权总分，选出最优者。
// 纯内存计算，骑手池与统计数据由调用方提供快照
type DriverAllocator struct {
	config AllocationConfig
	eta    *ETAPredictor
	now    func() time.Time
}

// NewDriverAllocator 创建派单引擎
func NewDriverAllocator(config AllocationConfig) *DriverAllocator {
	return &DriverAllocator{
		config: config,
		eta:    NewETAPredictor(DefaultETAConfig()),
		now:    time.Now,
	}
}

// FindBestDriver 为订单挑选最优骑手
// opts 中的零值字段会替换为默认值（半径 10km、最低评分 3.0）
func (a *DriverAllocator) FindBestDriver(
	order OrderSnapshot,
	drivers []DriverSnapshot,
	stats map[int64]DriverStats,
	opts FindBestDriverOptions,
) AllocationResult {
	if opts.MaxDistanceKm <= 0 {
		opts.MaxDistanceKm = DefaultFindBestDriverOptions().MaxDistanceKm
	}
	if opts.MinRating <= 0 {
		opts.MinRating = DefaultFindBestDriverOptions().MinRating
	}

	// 1. 基础过滤：在线、启用、已认证、评分达标、车型允许、未被排除、有定位
	pool := a.filterPool(drivers, opts)
	if len(pool) == 0 {
		return AllocationResult{Success: false, Scores: []DriverScore{}, Reason: ReasonNoAvailableDrivers}
	}

	// 2. 距离过滤，与"池子为空"区分开
	inRange := make([]DriverSnapshot, 0, len(pool))
	for _, d := range pool {
		if DistanceKm(*d.Location, order.PickupLocation) <= opts.MaxDistanceKm {
			inRange = append(inRange, d)
		}
	}
	if len(inRange) == 0 {
		return AllocationResult{Success: false, Scores: []DriverScore{}, Reason: ReasonNoDriversInRange}
	}

	// 3. 逐个评分
	scores := make([]DriverScore, 0, len(inRange))
	for _, d := range inRange {
		scores = append(scores, a.scoreDriver(order, d, stats[d.ID]))
	}

	// 4. 按总分降序，同分按骑手ID升序，保证结果可复现
	sort.Slice(scores, func(i, j int) bool {
		if scores[i].TotalScore != scores[j].TotalScore {
			return scores[i].TotalScore > scores[j].TotalScore
		}
		return scores[i].DriverID < scores[j].DriverID
	})

	// 5. 最高分低于下限时宁可排队也不硬派
	if scores[0].TotalScore < a.config.MinTotalScore {
		return AllocationResult{Success: false, Scores: scores, Reason: ReasonLowScores}
	}

	return AllocationResult{
		Success:  true,
		DriverID: scores[0].DriverID,
		Scores:   scores,
	}
}

// filterPool 基础资格过滤
func (a *DriverAllocator) filterPool(drivers []DriverSnapshot, opts FindBestDriverOptions) []DriverSnapshot {
	excluded := make(map[int64]bool, len(opts.ExcludeDriverIDs))
	for _, id := range opts.ExcludeDriverIDs {
		excluded[id] = true
	}

	allowedVehicle := func(VehicleType) bool { return true }
	if len(opts.VehicleTypes) > 0 {
		allowed := make(map[VehicleType]bool, len(opts.VehicleTypes))
		for _, v := range opts.VehicleTypes {
			allowed[v] = true
		}
		allowedVehicle = func(v VehicleType) bool { return allowed[v] }
	}

	pool := make([]DriverSnapshot, 0, len(drivers))
	for _, d := range drivers {
		if d.Status != DriverOnline || !d.IsActive || !d.IsVerified {
			continue
		}
		if d.Rating < opts.MinRating {
			continue
		}
		if !allowedVehicle(d.VehicleType) {
			continue
		}
		if excluded[d.ID] || d.Location == nil {
			continue
		}
		pool = append(pool, d)
	}
	return pool
}

// scoreDriver 计算单个骑手的七项子分与加权总分
func (a *DriverAllocator) scoreDriver(order OrderSnapshot, d DriverSnapshot, st DriverStats) DriverScore {
	distanceKm := DistanceKm(*d.Location, order.PickupLocation)

	acceptance := 0.5
	if st.HasAcceptanceData {
		acceptance = st.AcceptanceRate
	}
	avgDelivery := 30.0
	if st.HasDeliveryData {
		avgDelivery = st.AvgDeliveryMinutes
	}

	sub := SubScores{
		Distance:       math.Max(0, 1-distanceKm/10),
		Rating:         clamp01((d.Rating - 1) / 4),
		AcceptanceRate: clamp01(acceptance),
		DeliverySpeed:  math.Max(0, 1-(avgDelivery-20)/40),
		VehicleMatch:   a.vehicleMatchScore(order, d.VehicleType),
		CurrentLoad:    math.Max(0, 1-float64(st.OrdersToday)/20),
		Fairness:       fairnessScore(d.TotalDeliveries, st.OrdersToday),
	}
	// deliverySpeed 的公式在极快骑手处会超过 1，统一收口
	sub.DeliverySpeed = clamp01(sub.DeliverySpeed)

	w := a.config.Weights
	total := sub.Distance*w.Distance +
		sub.Rating*w.Rating +
		sub.AcceptanceRate*w.AcceptanceRate +
		sub.DeliverySpeed*w.DeliverySpeed +
		sub.VehicleMatch*w.VehicleMatch +
		sub.CurrentLoad*w.CurrentLoad +
		sub.Fairness*w.Fairness

	rating := d.Rating
	prediction := a.eta.Predict(PredictParams{
		Pickup:       order.PickupLocation,
		Delivery:     order.DeliveryLocation,
		DriverRating: &rating,
		When:         a.now(),
	})

	return DriverScore{
		DriverID:                 d.ID,
		Scores:                   sub,
		TotalScore:               total,
		DistanceToPickupKm:       distanceKm,
		EstimatedPickupMinutes:   distanceKm * a.config.PickupMinPerKm,
		EstimatedDeliveryMinutes: prediction.EstimatedMinutes,
	}
}

// vehicleMatchScore 车型与订单金额/付款方式的匹配度
// 金额超限 0.3，不支持货到付款 0.2（先查金额再查COD）；
// 大车拉小单 0.7，避免浪费运力
func (a *DriverAllocator) vehicleMatchScore(order OrderSnapshot, v VehicleType) float64 {
	profile, ok := a.config.Vehicles[v]
	if !ok {
		return 0.5
	}

	if order.TotalAmount > profile.MaxOrderValue {
		return 0.3
	}
	if order.IsCOD && !profile.CODCapable {
		return 0.2
	}
	if (v == VehicleVan || v == VehicleTruck) && order.TotalAmount < 100 {
		return 0.7
	}
	return 1.0
}

// fairnessScore 向新骑手和今日单量少的骑手倾斜
func fairnessScore(totalDeliveries int64, ordersToday int) float64 {
	if totalDeliveries < 10 {
		return 0.8
	}
	switch {
	case ordersToday == 0:
		return 1.0
	case ordersToday < 5:
		return 0.9
	case ordersToday < 10:
		return 0.7
	default:
		return 0.5
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
