package conversion

type tagPair struct {
	from, to TemperatureTag
}

var temperatureFormulas = map[tagPair]func(float64) float64{
	{TagCelsius, TagFahrenheit}: func(v float64) float64 { return v*9/5 + 32 },
	{TagCelsius, TagKelvin}:     func(v float64) float64 { return v + 273.15 },
	{TagFahrenheit, TagCelsius}: func(v float64) float64 { return (v - 32) * 5 / 9 },
	{TagFahrenheit, TagKelvin}:  func(v float64) float64 { return (v-32)*5/9 + 273.15 },
	{TagKelvin, TagCelsius}:     func(v float64) float64 { return v - 273.15 },
	{TagKelvin, TagFahrenheit}:  func(v float64) float64 { return (v-273.15)*9/5 + 32 },
}

func knownTag(tag TemperatureTag) bool {
	return tag == TagCelsius || tag == TagFahrenheit || tag == TagKelvin
}

// convertTemperature applies the pairwise formula for the given tags.
// The boolean is false when no formula covers the pair.
func convertTemperature(v float64, from, to TemperatureTag) (float64, bool) {
	if !knownTag(from) || !knownTag(to) {
		return 0, false
	}
	if from == to {
		return v, true
	}
	formula, ok := temperatureFormulas[tagPair{from, to}]
	if !ok {
		return 0, false
	}
	return formula(v), true
}
