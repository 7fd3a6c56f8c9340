package algorithm

import "time"

// 2-opt 最大改进轮数
const maxTwoOptIterations = 100

// 各车型到店/到客的默认停留时长（分钟）
var vehicleDwellMinutes = map[VehicleType]float64{
	VehicleBicycle:    4,
	VehicleMotorcycle: 3,
	VehicleCar:        4,
	VehicleVan:        5,
}

const defaultDwellMinutes = 5.0

// RouteOptimizer 路径优化器
// 贪心最近邻构造 + 有上限的 2-opt 局部搜索，是启发式而非精确 TSP 求解
type RouteOptimizer struct{}

// NewRouteOptimizer 创建路径优化器
func NewRouteOptimizer() *RouteOptimizer {
	return &RouteOptimizer{}
}

// Optimize 对骑手的途经点排序
// respectPrecedence 为 true 时保证同一订单先取后送；此时跳过 2-opt，
// 因为片段反转可能破坏取送顺序
func (o *RouteOptimizer) Optimize(
	driverLoc Location,
	stops []RouteStop,
	vehicle VehicleType,
	startTime time.Time,
	respectPrecedence bool,
) OptimizedRoute {
	route := OptimizedRoute{
		Stops:         []OptimizedStop{},
		StartLocation: driverLoc,
		StartTime:     startTime,
	}
	if len(stops) == 0 {
		return route
	}

	// 节点 0 为骑手当前位置，1..n 为途经点
	nodes := make([]Location, 0, len(stops)+1)
	nodes = append(nodes, driverLoc)
	for _, stop := range stops {
		nodes = append(nodes, stop.Location)
	}

	matrix := buildDistanceMatrix(nodes)
	precedence := buildPrecedence(stops)

	order := nearestNeighborOrder(matrix, precedence)
	if !respectPrecedence {
		order = twoOpt(order, matrix)
	}

	originalKm := naiveTraversalKm(matrix)
	optimizedKm := traversalKm(order, matrix)

	// 自由重排时绝不允许比原始顺序更差
	if !respectPrecedence && optimizedKm > originalKm {
		order = identityOrder(len(stops))
		optimizedKm = originalKm
	}

	route.Stops = o.walkRoute(order, stops, matrix, vehicle, startTime)
	if n := len(route.Stops); n > 0 {
		route.TotalKm = route.Stops[n-1].CumulativeKm
		route.TotalMinutes = route.Stops[n-1].CumulativeMinutes
	}

	savings := originalKm - optimizedKm
	route.Savings = RouteSavings{DistanceKm: savings}
	if originalKm > 0 {
		route.Savings.Percent = savings / originalKm * 100
	}

	return route
}

// buildDistanceMatrix 构建全量两两距离矩阵，O(n²)，途经点规模为几十个时可接受
func buildDistanceMatrix(nodes []Location) [][]float64 {
	n := len(nodes)
	matrix := make([][]float64, n)
	for i := range matrix {
		matrix[i] = make([]float64, n)
		for j := range matrix[i] {
			if i != j {
				matrix[i][j] = DistanceKm(nodes[i], nodes[j])
			}
		}
	}
	return matrix
}

// buildPrecedence 对同时出现取货点和送货点的订单，记录"送货节点 -> 取货节点"约束
// 节点编号与距离矩阵一致（含起点偏移）
func buildPrecedence(stops []RouteStop) map[int]int {
	pickupNode := make(map[int64]int)
	for i, stop := range stops {
		if stop.Type == StopPickup && stop.OrderID != 0 {
			pickupNode[stop.OrderID] = i + 1
		}
	}

	precedence := make(map[int]int)
	for i, stop := range stops {
		if stop.Type == StopDelivery && stop.OrderID != 0 {
			if p, ok := pickupNode[stop.OrderID]; ok {
				precedence[i+1] = p
			}
		}
	}
	return precedence
}

// nearestNeighborOrder 从起点开始的贪心最近邻遍历
// 每步在满足先取后送约束的未访问节点中选最近者；严格小于才替换，保证确定性。
// 若没有可行节点（正常不会发生），退回原始顺序中的第一个未访问节点
func nearestNeighborOrder(matrix [][]float64, precedence map[int]int) []int {
	n := len(matrix)
	visited := make([]bool, n)
	visited[0] = true

	order := make([]int, 0, n-1)
	current := 0

	for len(order) < n-1 {
		next := -1
		best := 0.0
		for node := 1; node < n; node++ {
			if visited[node] {
				continue
			}
			if p, ok := precedence[node]; ok && !visited[p] {
				continue
			}
			if next == -1 || matrix[current][node] < best {
				next = node
				best = matrix[current][node]
			}
		}

		if next == -1 {
			for node := 1; node < n; node++ {
				if !visited[node] {
					next = node
					break
				}
			}
		}

		visited[next] = true
		order = append(order, next)
		current = next
	}

	return order
}

// twoOpt 反转能缩短总距离的路径片段，直到无改进或达到轮数上限
func twoOpt(order []int, matrix [][]float64) []int {
	n := len(order)
	if n < 3 {
		return order
	}

	improved := true
	for iter := 0; improved && iter < maxTwoOptIterations; iter++ {
		improved = false
		for i := 0; i < n-1; i++ {
			for j := i + 1; j < n; j++ {
				if twoOptGain(order, matrix, i, j) > 0 {
					reverseSegment(order, i, j)
					improved = true
				}
			}
		}
	}
	return order
}

// twoOptGain 计算反转 order[i..j] 后总距离的减少量
func twoOptGain(order []int, matrix [][]float64, i, j int) float64 {
	prev := 0 // 起点
	if i > 0 {
		prev = order[i-1]
	}

	before := matrix[prev][order[i]]
	after := matrix[prev][order[j]]
	if j < len(order)-1 {
		next := order[j+1]
		before += matrix[order[j]][next]
		after += matrix[order[i]][next]
	}
	return before - after
}

func reverseSegment(order []int, i, j int) {
	for i < j {
		order[i], order[j] = order[j], order[i]
		i++
		j--
	}
}

// naiveTraversalKm 起点按输入顺序依次走完所有途经点的总距离
func naiveTraversalKm(matrix [][]float64) float64 {
	total := 0.0
	prev := 0
	for node := 1; node < len(matrix); node++ {
		total += matrix[prev][node]
		prev = node
	}
	return total
}

// traversalKm 按给定顺序走完所有途经点的总距离
func traversalKm(order []int, matrix [][]float64) float64 {
	total := 0.0
	prev := 0
	for _, node := range order {
		total += matrix[prev][node]
		prev = node
	}
	return total
}

func identityOrder(n int) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = i + 1
	}
	return order
}

// walkRoute 沿最终顺序累计距离/时长并计算到达时间
// 行驶时长不叠加交通系数，交通影响由上层预测器负责
func (o *RouteOptimizer) walkRoute(
	order []int,
	stops []RouteStop,
	matrix [][]float64,
	vehicle VehicleType,
	startTime time.Time,
) []OptimizedStop {
	result := make([]OptimizedStop, 0, len(order))

	prev := 0
	cumKm := 0.0
	cumMinutes := 0.0

	for seq, node := range order {
		stop := stops[node-1]

		legKm := matrix[prev][node]
		legMinutes := TravelTimeMinutes(legKm, vehicle)

		cumKm += legKm
		cumMinutes += legMinutes
		arrival := startTime.Add(time.Duration(cumMinutes * float64(time.Minute)))

		dwell := stop.EstimatedMinutes
		if dwell == 0 {
			dwell = dwellMinutes(vehicle)
		}
		cumMinutes += dwell

		result = append(result, OptimizedStop{
			RouteStop:          stop,
			Sequence:           seq + 1,
			DistanceFromPrevKm: legKm,
			DurationFromPrev:   legMinutes,
			CumulativeKm:       cumKm,
			CumulativeMinutes:  cumMinutes,
			EstimatedArrival:   arrival,
		})

		prev = node
	}

	return result
}

// dwellMinutes 车型默认停留时长
func dwellMinutes(v VehicleType) float64 {
	if d, ok := vehicleDwellMinutes[v]; ok {
		return d
	}
	return defaultDwellMinutes
}
