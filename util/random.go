package util

import (
	"fmt"
	"math/rand"
	"strings"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz"

// RandomInt generates a random integer between min and max
func RandomInt(min, max int64) int64 {
	return min + rand.Int63n(max-min+1)
}

// RandomFloat generates a random float between min and max
func RandomFloat(min, max float64) float64 {
	return min + rand.Float64()*(max-min)
}

// RandomString generates a random string of length n
func RandomString(n int) string {
	var sb strings.Builder
	k := len(alphabet)

	for i := 0; i < n; i++ {
		c := alphabet[rand.Intn(k)]
		sb.WriteByte(c)
	}

	return sb.String()
}

// RandomName generates a random driver/merchant name
func RandomName() string {
	return RandomString(8)
}

// RandomPhone 生成合法的大陆手机号（第二位3-9）
func RandomPhone() string {
	return fmt.Sprintf("1%d%09d", RandomInt(3, 9), RandomInt(0, 999999999))
}

// RandomLatitude 生成测试用纬度（城区范围）
func RandomLatitude() float64 {
	return RandomFloat(39.8, 40.0)
}

// RandomLongitude 生成测试用经度（城区范围）
func RandomLongitude() float64 {
	return RandomFloat(116.3, 116.5)
}

// RandomVehicleType picks a random vehicle type
func RandomVehicleType() string {
	types := []string{"bicycle", "motorcycle", "car", "van", "truck"}
	return types[rand.Intn(len(types))]
}

// RandomMoney generates a random amount in cents
func RandomMoney() int64 {
	return RandomInt(500, 20000)
}
