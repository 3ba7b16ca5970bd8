package membership

// Temperature set keys
const (
	SetDingin      = "dingin"
	SetSejuk       = "sejuk"
	SetNormal      = "normal"
	SetPanas       = "panas"
	SetSangatPanas = "sangatPanas"
)

// Humidity set keys
const (
	SetKering = "kering"
	SetSedang = "sedang"
	SetLembab = "lembab"
)

// Operating ranges
const (
	TemperatureMin = 10.0
	TemperatureMax = 40.0
	HumidityMin    = 0.0
	HumidityMax    = 100.0
)

// Temperature is room temperature in degrees Celsius.
// Five sets, each transition 5 degrees wide, consecutive centers 5 degrees apart.
var Temperature = &Variable{
	Name: "temperature",
	Unit: "°C",
	Min:  TemperatureMin,
	Max:  TemperatureMax,
	Sets: []Set{
		{Key: SetDingin, Label: "Dingin", Fn: LeftShoulder{Full: 15, Zero: 20}},
		{Key: SetSejuk, Label: "Sejuk", Fn: Triangle{Left: 15, Peak: 20, Right: 25}},
		{Key: SetNormal, Label: "Normal", Fn: Triangle{Left: 20, Peak: 25, Right: 30}},
		{Key: SetPanas, Label: "Panas", Fn: Triangle{Left: 25, Peak: 30, Right: 35}},
		{Key: SetSangatPanas, Label: "Sangat Panas", Fn: RightShoulder{Zero: 30, Full: 35}},
	},
}

// Humidity is relative humidity in percent.
var Humidity = &Variable{
	Name: "humidity",
	Unit: "%",
	Min:  HumidityMin,
	Max:  HumidityMax,
	Sets: []Set{
		{Key: SetKering, Label: "Kering", Fn: LeftShoulder{Full: 30, Zero: 40}},
		{Key: SetSedang, Label: "Sedang", Fn: Triangle{Left: 30, Peak: 50, Right: 70}},
		{Key: SetLembab, Label: "Lembab", Fn: RightShoulder{Zero: 60, Full: 80}},
	},
}
