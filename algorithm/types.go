// Package algorithm 提供派单评分、路径优化、送达时间预测等算法
// 该包不依赖数据库，输入输出均为内存快照，便于测试和升级
package algorithm

import "time"

// Location 地理位置
type Location struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}

// VehicleType 运力车型
type VehicleType string

const (
	VehicleBicycle    VehicleType = "bicycle"
	VehicleMotorcycle VehicleType = "motorcycle"
	VehicleCar        VehicleType = "car"
	VehicleVan        VehicleType = "van"
	VehicleTruck      VehicleType = "truck"
)

// DriverStatus 骑手状态
type DriverStatus string

const (
	DriverOffline    DriverStatus = "offline"
	DriverOnline     DriverStatus = "online"
	DriverBusy       DriverStatus = "busy"
	DriverOnDelivery DriverStatus = "on_delivery"
)

// OrderPriority 订单优先级
type OrderPriority string

const (
	PriorityNormal  OrderPriority = "normal"
	PriorityHigh    OrderPriority = "high"
	PriorityExpress OrderPriority = "express"
)

// DriverSnapshot 派单时刻的骑手快照
// Location 为 nil 表示没有近期定位，派单时直接过滤掉
type DriverSnapshot struct {
	ID              int64        `json:"id"`
	Location        *Location    `json:"location"`
	VehicleType     VehicleType  `json:"vehicle_type"`
	Rating          float64      `json:"rating"` // 0-5
	TotalDeliveries int64        `json:"total_deliveries"`
	Status          DriverStatus `json:"status"`
	IsActive        bool         `json:"is_active"`
	IsVerified      bool         `json:"is_verified"`
}

// DriverStats 骑手近期统计（近30天），缺失时使用默认值
type DriverStats struct {
	AcceptanceRate     float64 `json:"acceptance_rate"`      // 接单率 0-1
	HasAcceptanceData  bool    `json:"has_acceptance_data"`  //
	AvgDeliveryMinutes float64 `json:"avg_delivery_minutes"` // 平均送达时长（已剔除>180分钟的离群值）
	HasDeliveryData    bool    `json:"has_delivery_data"`    //
	OrdersToday        int     `json:"orders_today"`         // 今日完成单数
}

// OrderSnapshot 派单时刻的订单快照
type OrderSnapshot struct {
	ID               int64         `json:"id"`
	MerchantID       int64         `json:"merchant_id"`
	PickupLocation   Location      `json:"pickup_location"`
	DeliveryLocation Location      `json:"delivery_location"`
	TotalAmount      int64         `json:"total_amount"` // 订单金额（分）
	IsCOD            bool          `json:"is_cod"`       // 货到付款
	DeliveryFee      int64         `json:"delivery_fee"` // 配送费（分）
	Priority         OrderPriority `json:"priority"`
}

// SubScores 单个骑手的七项子分，均归一化到 [0,1]
type SubScores struct {
	Distance       float64 `json:"distance"`
	Rating         float64 `json:"rating"`
	AcceptanceRate float64 `json:"acceptance_rate"`
	DeliverySpeed  float64 `json:"delivery_speed"`
	VehicleMatch   float64 `json:"vehicle_match"`
	CurrentLoad    float64 `json:"current_load"`
	Fairness       float64 `json:"fairness"`
}

// DriverScore 某次派单中 (骑手, 订单) 的评分结果，仅在单次调用内存在
type DriverScore struct {
	DriverID                 int64     `json:"driver_id"`
	Scores                   SubScores `json:"scores"`
	TotalScore               float64   `json:"total_score"`
	DistanceToPickupKm       float64   `json:"distance_to_pickup_km"`
	EstimatedPickupMinutes   float64   `json:"estimated_pickup_minutes"`
	EstimatedDeliveryMinutes float64   `json:"estimated_delivery_minutes"`
}

// AllocationResult 派单结果
// Success=false 时 Reason 区分"池子为空"和"范围内无人"等情况，调用方据此决策
type AllocationResult struct {
	Success  bool          `json:"success"`
	DriverID int64         `json:"driver_id,omitempty"`
	Scores   []DriverScore `json:"scores"`
	Reason   string        `json:"reason,omitempty"`
}

// AllocationWeights 七项子分的权重，和为 1.0
type AllocationWeights struct {
	Distance       float64 `json:"distance"`
	Rating         float64 `json:"rating"`
	AcceptanceRate float64 `json:"acceptance_rate"`
	DeliverySpeed  float64 `json:"delivery_speed"`
	VehicleMatch   float64 `json:"vehicle_match"`
	CurrentLoad    float64 `json:"current_load"`
	Fairness       float64 `json:"fairness"`
}

// VehicleProfile 车型承载能力
type VehicleProfile struct {
	MaxOrderValue int64 // 可承运的最大订单金额（分）
	CODCapable    bool  // 是否支持货到付款
}

// AllocationConfig 派单算法配置
type AllocationConfig struct {
	Weights        AllocationWeights              `json:"weights"`
	MinTotalScore  float64                        `json:"min_total_score"` // 低于该分宁可排队也不派
	PickupMinPerKm float64                        `json:"pickup_min_per_km"`
	Vehicles       map[VehicleType]VehicleProfile `json:"-"`
}

// DefaultAllocationConfig 默认派单配置
func DefaultAllocationConfig() AllocationConfig {
	return AllocationConfig{
		Weights: AllocationWeights{
			Distance:       0.30,
			Rating:         0.15,
			AcceptanceRate: 0.15,
			DeliverySpeed:  0.10,
			VehicleMatch:   0.10,
			CurrentLoad:    0.10,
			Fairness:       0.10,
		},
		MinTotalScore:  0.3,
		PickupMinPerKm: 3.0,
		Vehicles: map[VehicleType]VehicleProfile{
			VehicleBicycle:    {MaxOrderValue: 500, CODCapable: false},
			VehicleMotorcycle: {MaxOrderValue: 2000, CODCapable: true},
			VehicleCar:        {MaxOrderValue: 10000, CODCapable: true},
			VehicleVan:        {MaxOrderValue: 50000, CODCapable: true},
			VehicleTruck:      {MaxOrderValue: 100000, CODCapable: true},
		},
	}
}

// FindBestDriverOptions 单次派单的筛选选项
type FindBestDriverOptions struct {
	MaxDistanceKm    float64       `json:"max_distance_km"`
	VehicleTypes     []VehicleType `json:"vehicle_types,omitempty"`
	ExcludeDriverIDs []int64       `json:"exclude_driver_ids,omitempty"`
	MinRating        float64       `json:"min_rating"`
}

// DefaultFindBestDriverOptions 默认筛选选项
func DefaultFindBestDriverOptions() FindBestDriverOptions {
	return FindBestDriverOptions{
		MaxDistanceKm: 10,
		MinRating:     3.0,
	}
}

// StopType 途经点类型
type StopType string

const (
	StopPickup   StopType = "pickup"
	StopDelivery StopType = "delivery"
)

// RouteStop 待排序的途经点
type RouteStop struct {
	ID               int64    `json:"id"`
	Location         Location `json:"location"`
	Type             StopType `json:"type"`
	OrderID          int64    `json:"order_id,omitempty"`          // 关联订单，0 表示无
	EstimatedMinutes float64  `json:"estimated_minutes,omitempty"` // 停留时长，0 表示用车型默认值
}

// OptimizedStop 排序后的途经点
type OptimizedStop struct {
	RouteStop
	Sequence           int       `json:"sequence"`
	DistanceFromPrevKm float64   `json:"distance_from_prev_km"`
	DurationFromPrev   float64   `json:"duration_from_prev"` // 分钟
	CumulativeKm       float64   `json:"cumulative_km"`
	CumulativeMinutes  float64   `json:"cumulative_minutes"`
	EstimatedArrival   time.Time `json:"estimated_arrival"`
}

// RouteSavings 相对于原始顺序的节省
type RouteSavings struct {
	DistanceKm float64 `json:"distance_km"`
	Percent    float64 `json:"percent"`
}

// OptimizedRoute 路径优化结果
type OptimizedRoute struct {
	Stops         []OptimizedStop `json:"stops"`
	TotalKm       float64         `json:"total_km"`
	TotalMinutes  float64         `json:"total_minutes"`
	Savings       RouteSavings    `json:"savings"`
	StartLocation Location        `json:"start_location"`
	StartTime     time.Time       `json:"start_time"`
}

// PredictParams 送达时间预测输入
// PrepMinutes / DriverRating 为 nil 表示未知，使用默认值且降低置信度
type PredictParams struct {
	Pickup       Location  `json:"pickup"`
	Delivery     Location  `json:"delivery"`
	PrepMinutes  *float64  `json:"prep_minutes,omitempty"`
	DriverRating *float64  `json:"driver_rating,omitempty"`
	When         time.Time `json:"when"`
}

// PredictionBreakdown 预测分解项（分钟）
type PredictionBreakdown struct {
	TravelTime     float64 `json:"travel_time"`
	PrepTime       float64 `json:"prep_time"`
	PickupBuffer   float64 `json:"pickup_buffer"`
	DeliveryBuffer float64 `json:"delivery_buffer"`
	DistanceBuffer float64 `json:"distance_buffer"`
}

// PredictionRange 预测区间（分钟）
type PredictionRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// PredictionResult 送达时间预测结果
type PredictionResult struct {
	EstimatedMinutes float64             `json:"estimated_minutes"`
	Confidence       float64             `json:"confidence"` // 0.7-0.95
	Breakdown        PredictionBreakdown `json:"breakdown"`
	Range            PredictionRange     `json:"range"`
}

// ETAConfig 送达时间预测配置
type ETAConfig struct {
	BaseMinPerKm       float64 `json:"base_min_per_km"`      // 每公里基础耗时
	DistanceBufferKm   float64 `json:"distance_buffer_km"`   // 每公里不确定性缓冲
	PickupBufferMin    float64 `json:"pickup_buffer_min"`    //
	DeliveryBufferMin  float64 `json:"delivery_buffer_min"`  //
	DefaultPrepMinutes float64 `json:"default_prep_minutes"` // 商户出餐时长未知时的默认值
}

// DefaultETAConfig 默认预测配置
func DefaultETAConfig() ETAConfig {
	return ETAConfig{
		BaseMinPerKm:       3.5,
		DistanceBufferKm:   0.5,
		PickupBufferMin:    5,
		DeliveryBufferMin:  5,
		DefaultPrepMinutes: 15,
	}
}
