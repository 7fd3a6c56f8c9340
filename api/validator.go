package api

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/quickbite/dispatch/val"
)

// registerCustomValidators 注册自定义验证器
func registerCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("validPhone", validPhone)
		v.RegisterValidation("validVehicleType", validVehicleType)
		v.RegisterValidation("validDriverStatus", validDriverStatus)
		v.RegisterValidation("validOrderPriority", validOrderPriority)
	}
}

// validPhone 验证中国大陆手机号格式
var validPhone validator.Func = func(fl validator.FieldLevel) bool {
	phone, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return val.ValidatePhone(phone) == nil
}

// validVehicleType 验证车辆类型
var validVehicleType validator.Func = func(fl validator.FieldLevel) bool {
	vehicleType, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return val.ValidateVehicleType(vehicleType) == nil
}

// validDriverStatus 验证骑手状态
var validDriverStatus validator.Func = func(fl validator.FieldLevel) bool {
	status, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return val.ValidateDriverStatus(status) == nil
}

// validOrderPriority 验证订单优先级
var validOrderPriority validator.Func = func(fl validator.FieldLevel) bool {
	priority, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return val.ValidateOrderPriority(priority) == nil
}
