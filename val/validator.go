package val

import (
	"fmt"
	"regexp"
)

var (
	// 中国大陆手机号：1开头，第二位3-9，共11位
	phoneRegex = regexp.MustCompile(`^1[3-9]\d{9}$`)

	validVehicleTypes = map[string]bool{
		"bicycle":    true,
		"motorcycle": true,
		"car":        true,
		"van":        true,
		"truck":      true,
	}

	validDriverStatuses = map[string]bool{
		"offline":     true,
		"online":      true,
		"busy":        true,
		"on_delivery": true,
	}

	validOrderPriorities = map[string]bool{
		"normal":  true,
		"high":    true,
		"express": true,
	}
)

// ValidatePhone 验证手机号格式
func ValidatePhone(phone string) error {
	if !phoneRegex.MatchString(phone) {
		return fmt.Errorf("invalid phone number format")
	}
	return nil
}

// ValidateVehicleType 验证车辆类型
func ValidateVehicleType(vehicleType string) error {
	if !validVehicleTypes[vehicleType] {
		return fmt.Errorf("invalid vehicle type: %s", vehicleType)
	}
	return nil
}

// ValidateDriverStatus 验证骑手状态
func ValidateDriverStatus(status string) error {
	if !validDriverStatuses[status] {
		return fmt.Errorf("invalid driver status: %s", status)
	}
	return nil
}

// ValidateOrderPriority 验证订单优先级
func ValidateOrderPriority(priority string) error {
	if !validOrderPriorities[priority] {
		return fmt.Errorf("invalid order priority: %s", priority)
	}
	return nil
}

// ValidateCoordinates 验证经纬度范围
func ValidateCoordinates(longitude, latitude float64) error {
	if longitude < -180 || longitude > 180 {
		return fmt.Errorf("longitude must be between -180 and 180")
	}
	if latitude < -90 || latitude > 90 {
		return fmt.Errorf("latitude must be between -90 and 90")
	}
	return nil
}
