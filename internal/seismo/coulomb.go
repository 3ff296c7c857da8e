package seismo

// coulomb is instantaneous Coulomb failure with stress-shadow memory: an
// increment counts only while stress rises and sits at or above the highest
// stress reached so far.
func (r *run) coulomb() ([]float64, []float64, error) {
	cfg := r.cfg
	nt := r.time.Count
	cf := r.cf

	rate := make([]float64, nt)
	shadow := make([]float64, nt)
	s0 := -cfg.Sshadow
	shadow[0] = cf[0] - cfg.Sshadow
	for i := 1; i < nt; i++ {
		if cf[i] >= cf[i-1] && cf[i] >= s0 {
			s0 = cf[i]
			rate[i] = cf[i] - cf[i-1]
		}
		shadow[i] = s0
	}

	scale(rate, cfg.Chi0/cfg.DeltaT)
	return rate, shadow, nil
}
