package input

// Direction bits produced by stick quantization
const (
	DirUp    = 1 << 0
	DirDown  = 1 << 1
	DirLeft  = 1 << 2
	DirRight = 1 << 3
)

// diagonalThreshold is the per-axis cutoff for 8-way mode: ~38% of full
// range, sin(22.5 degrees) of 32767.
const diagonalThreshold = 12500

// All stick math is integer fixed-point. Normalized magnitude lives in
// [0,10000] representing [0.0,1.0]; there is no floating point anywhere on
// the report path.

// applyCurve maps a normalized magnitude through the configured response
// curve. Inputs outside [0,10000] saturate.
func applyCurve(normalized int32, curve uint8) int32 {
	if normalized <= 0 {
		return 0
	}
	if normalized >= 10000 {
		return 10000
	}

	var result int32
	switch curve {
	case CurveLinear:
		result = normalized
	case CurveSquare:
		result = (normalized * normalized) / 10000
	case CurveSmoothstep:
		// 3t^2 - 2t^3 with fixed-point intermediate powers
		t2 := (normalized * normalized) / 10000
		t3 := (t2 * normalized) / 10000
		result = 3*t2 - 2*t3
	default:
		result = normalized
	}

	if result < 0 {
		result = 0
	}
	if result > 10000 {
		result = 10000
	}
	return result
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

// normalize converts a raw magnitude into fixed-point [0,10000] between
// deadzone and saturation. Returns 0,false below the deadzone or when the
// configured range is degenerate.
func normalize(magnitude int32, cfg *StickConfig) (int32, bool) {
	deadzone := int32(cfg.Deadzone)
	saturation := int32(cfg.Saturation)
	if magnitude < deadzone {
		return 0, false
	}
	if saturation <= deadzone {
		return 0, false
	}
	if magnitude > saturation {
		magnitude = saturation
	}
	norm := (magnitude - deadzone) * 10000 / (saturation - deadzone)
	if norm < 0 {
		norm = 0
	}
	if norm > 10000 {
		norm = 10000
	}
	return norm, true
}

// mouseDelta converts stick deflection into per-poll pointer movement.
//
// Magnitude is Chebyshev (max of the axis magnitudes), so no square root on
// the report path. The split between axes uses the dominant-axis ratio, which
// overstates diagonal speed compared to true vector normalization; that is
// the established feel and stays as is. Stick up produces negative screen Y.
func mouseDelta(x, y int16, cfg *StickConfig) (dx, dy int32) {
	absX := abs32(int32(x))
	absY := abs32(int32(y))
	magnitude := absX
	if absY > absX {
		magnitude = absY
	}

	norm, ok := normalize(magnitude, cfg)
	if !ok {
		return 0, 0
	}
	curved := applyCurve(norm, cfg.MouseCurve)

	speed := curved * int32(cfg.MouseSensitivity) * int32(cfg.MouseMaxSpeed) / (10000 * 100)
	if speed < 1 && curved > 0 {
		speed = 1 // minimum step once outside the deadzone
	}

	if absX > absY {
		if x > 0 {
			dx = speed
		} else {
			dx = -speed
		}
		if y != 0 {
			dy = speed * absY / absX
			if y > 0 {
				dy = -dy
			}
		}
	} else {
		if y > 0 {
			dy = -speed
		} else {
			dy = speed
		}
		if x != 0 {
			dx = speed * absX / absY
			if x < 0 {
				dx = -dx
			}
		}
	}
	return dx, dy
}

// scrollDelta converts stick Y deflection into a wheel delta in [1,10],
// sign-inverted so stick up scrolls up (negative delta by convention).
func scrollDelta(y int16, cfg *StickConfig) int32 {
	absY := abs32(int32(y))
	deadzone := int32(cfg.Deadzone)
	if cfg.ScrollDeadzone != 0 {
		deadzone = int32(cfg.ScrollDeadzone)
	}
	if absY < deadzone {
		return 0
	}
	saturation := int32(cfg.Saturation)
	if saturation <= deadzone {
		return 0
	}

	magnitude := absY
	if magnitude > saturation {
		magnitude = saturation
	}
	norm := (magnitude - deadzone) * 100 / (saturation - deadzone)

	delta := norm * int32(cfg.ScrollSensitivity) / 100
	if delta < 1 {
		delta = 1
	}
	if delta > 10 {
		delta = 10
	}

	if y > 0 {
		return -delta
	}
	return delta
}

// stickDirection quantizes deflection into a direction bitmask. 4-way picks
// the dominant axis; 8-way tests each axis independently against the
// diagonal threshold so two adjacent bits can be set at once.
func stickDirection(x, y int16, cfg *StickConfig) uint8 {
	absX := abs32(int32(x))
	absY := abs32(int32(y))
	magnitude := absX
	if absY > absX {
		magnitude = absY
	}
	if magnitude < int32(cfg.Deadzone) {
		return 0
	}

	var dir uint8
	if cfg.DirectionMode == 8 {
		if int32(y) > diagonalThreshold {
			dir |= DirUp
		}
		if int32(y) < -diagonalThreshold {
			dir |= DirDown
		}
		if int32(x) < -diagonalThreshold {
			dir |= DirLeft
		}
		if int32(x) > diagonalThreshold {
			dir |= DirRight
		}
	} else {
		deadzone := int32(cfg.Deadzone)
		if absX > absY {
			if int32(x) > deadzone {
				dir = DirRight
			} else if int32(x) < -deadzone {
				dir = DirLeft
			}
		} else {
			if int32(y) > deadzone {
				dir = DirUp
			} else if int32(y) < -deadzone {
				dir = DirDown
			}
		}
	}
	return dir
}
