package calculator

import "errors"

// OBV computes the on-balance volume series. The series is seeded with the
// first volume; each later step adds the volume when price rose, subtracts
// it when price fell, and carries the value forward unchanged when flat.
func OBV(prices, volumes []float64) ([]float64, error) {
	if len(volumes) == 0 {
		return nil, errors.New("no volume data for OBV calculation")
	}

	n := len(prices)
	if len(volumes) < n {
		n = len(volumes)
	}

	obv := make([]float64, 0, n)
	obv = append(obv, volumes[0])
	for i := 1; i < n; i++ {
		prev := obv[len(obv)-1]
		switch {
		case prices[i] > prices[i-1]:
			obv = append(obv, prev+volumes[i])
		case prices[i] < prices[i-1]:
			obv = append(obv, prev-volumes[i])
		default:
			obv = append(obv, prev)
		}
	}
	return obv, nil
}
