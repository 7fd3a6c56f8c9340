package algorithm

import (
	"math"
	"time"
)

const (
	// 地球半径（公里）
	earthRadiusKm = 6371.0

	// 未知车型的兜底速度（km/h）
	defaultSpeedKmh = 25.0
)

// 各车型平均速度（km/h）
var vehicleSpeedKmh = map[VehicleType]float64{
	VehicleBicycle:    15,
	VehicleMotorcycle: 25,
	VehicleCar:        30,
	VehicleVan:        28,
	VehicleTruck:      25,
}

// 各小时的交通拥堵系数，早晚高峰 1.5，深夜 0.6-0.8
var hourlyTrafficFactor = [24]float64{
	0.6, 0.6, 0.6, 0.6, 0.7, 0.8, // 00-05
	1.0, 1.3, 1.5, 1.5, 1.2, 1.1, // 06-11
	1.3, 1.2, 1.0, 1.0, 1.2, 1.5, // 12-17
	1.5, 1.4, 1.2, 1.0, 0.8, 0.7, // 18-23
}

// DistanceKm 计算两点间的球面距离（公里）
// 使用 Haversine 公式；对称且恒非负，同一点返回 0
func DistanceKm(a, b Location) float64 {
	lat1 := toRadians(a.Latitude)
	lat2 := toRadians(b.Latitude)
	deltaLat := toRadians(b.Latitude - a.Latitude)
	deltaLng := toRadians(b.Longitude - a.Longitude)

	h := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(deltaLng/2)*math.Sin(deltaLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

// VehicleSpeedKmh 返回车型平均速度，未知车型使用兜底速度，不报错
func VehicleSpeedKmh(v VehicleType) float64 {
	if speed, ok := vehicleSpeedKmh[v]; ok {
		return speed
	}
	return defaultSpeedKmh
}

// TravelTimeMinutes 按车型速度估算行驶时间（分钟）
func TravelTimeMinutes(distanceKm float64, v VehicleType) float64 {
	if distanceKm <= 0 {
		return 0
	}
	return distanceKm / VehicleSpeedKmh(v) * 60
}

// TrafficMultiplier 按时段查表得到交通系数
func TrafficMultiplier(t time.Time) float64 {
	return hourlyTrafficFactor[t.Hour()]
}

// DayOfWeekMultiplier 周末前后的加重系数，周五周六最重
func DayOfWeekMultiplier(t time.Time) float64 {
	switch t.Weekday() {
	case time.Friday:
		return 1.2
	case time.Saturday:
		return 1.3
	case time.Sunday:
		return 1.1
	default:
		return 1.0
	}
}

// CombinedTimeMultiplier 交通系数与星期系数相乘
func CombinedTimeMultiplier(t time.Time) float64 {
	return TrafficMultiplier(t) * DayOfWeekMultiplier(t)
}

// toRadians 角度转弧度
func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
