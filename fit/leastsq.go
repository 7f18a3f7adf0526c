package fit

import "math"

// levenbergMarquardt minimizes Σ rᵢ(p)² over p, where eval fills the
// residual vector for a given parameter vector. The Jacobian is built by
// forward differences and each step solves the damped normal equations
// (JᵀJ + λ·diag(JᵀJ))·δ = -Jᵀr. The damping λ shrinks after an accepted
// step and grows after a rejected one.
func levenbergMarquardt(eval func(params []float64, out []float64), nRes int,
	initial []float64, maxIter int, tol float64) (params []float64, chiSq float64, iters int, converged bool, err error) {

	nPar := len(initial)
	params = make([]float64, nPar)
	copy(params, initial)

	res := make([]float64, nRes)
	trialRes := make([]float64, nRes)
	trial := make([]float64, nPar)
	jac := make([][]float64, nRes)
	for i := range jac {
		jac[i] = make([]float64, nPar)
	}

	eval(params, res)
	chiSq = dot(res, res)
	lambda := 1e-3

	for iters = 1; iters <= maxIter; iters++ {
		forwardJacobian(eval, params, res, trial, trialRes, jac)

		// Normal equations: a = JᵀJ (damped diagonal), b = -Jᵀr.
		a := make([][]float64, nPar)
		b := make([]float64, nPar)
		for j := 0; j < nPar; j++ {
			a[j] = make([]float64, nPar)
			for k := 0; k <= j; k++ {
				var s float64
				for i := 0; i < nRes; i++ {
					s += jac[i][j] * jac[i][k]
				}
				a[j][k] = s
				a[k][j] = s
			}
			var s float64
			for i := 0; i < nRes; i++ {
				s += jac[i][j] * res[i]
			}
			b[j] = -s
		}
		for j := 0; j < nPar; j++ {
			a[j][j] *= 1 + lambda
		}

		delta, solveErr := solveLinear(a, b)
		if solveErr != nil {
			return params, chiSq, iters, false, solveErr
		}

		for j := 0; j < nPar; j++ {
			trial[j] = params[j] + delta[j]
		}
		eval(trial, trialRes)
		trialChiSq := dot(trialRes, trialRes)

		if trialChiSq < chiSq {
			improvement := chiSq - trialChiSq
			copy(params, trial)
			copy(res, trialRes)
			chiSq = trialChiSq
			lambda = math.Max(lambda*0.1, 1e-12)
			if improvement <= tol*(chiSq+tol) {
				return params, chiSq, iters, true, nil
			}
		} else {
			lambda *= 10
			if lambda > 1e12 {
				// The damped step has degenerated to steepest descent with
				// a vanishing length; the minimum is as good as reached.
				return params, chiSq, iters, true, nil
			}
		}
	}

	return params, chiSq, maxIter, false, nil
}

// forwardJacobian fills jac[i][j] = ∂rᵢ/∂pⱼ by forward differences,
// reusing the caller's scratch vectors.
func forwardJacobian(eval func(params []float64, out []float64),
	params, res, trial, trialRes []float64, jac [][]float64) {

	copy(trial, params)
	for j := range params {
		h := 1e-8 * math.Max(math.Abs(params[j]), 1)
		trial[j] = params[j] + h
		eval(trial, trialRes)
		for i := range trialRes {
			jac[i][j] = (trialRes[i] - res[i]) / h
		}
		trial[j] = params[j]
	}
}

// solveLinear solves a·x = b by Gaussian elimination with partial
// pivoting. a and b are destroyed.
func solveLinear(a [][]float64, b []float64) ([]float64, error) {
	n := len(b)
	for col := 0; col < n; col++ {
		pivot := col
		for row := col + 1; row < n; row++ {
			if math.Abs(a[row][col]) > math.Abs(a[pivot][col]) {
				pivot = row
			}
		}
		if math.Abs(a[pivot][col]) < 1e-300 {
			return nil, ErrSingular
		}
		a[col], a[pivot] = a[pivot], a[col]
		b[col], b[pivot] = b[pivot], b[col]

		inv := 1 / a[col][col]
		for row := col + 1; row < n; row++ {
			f := a[row][col] * inv
			if f == 0 {
				continue
			}
			for k := col; k < n; k++ {
				a[row][k] -= f * a[col][k]
			}
			b[row] -= f * b[col]
		}
	}

	x := make([]float64, n)
	for row := n - 1; row >= 0; row-- {
		s := b[row]
		for k := row + 1; k < n; k++ {
			s -= a[row][k] * x[k]
		}
		x[row] = s / a[row][row]
	}

	return x, nil
}

func dot(a, b []float64) float64 {
	var s float64
	for i := range a {
		s += a[i] * b[i]
	}

	return s
}
