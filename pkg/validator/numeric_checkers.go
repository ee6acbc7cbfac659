package validator

// checkNum coerces to float64 and checks the inclusive range.
func checkNum(_ *Frame, _ string, spec Spec, raw any) Outcome {
	f, ok := toFloat(raw)
	if !ok {
		return fail(typeMismatch(KindNumeric))
	}
	if err := Apply(Between(f, spec.Min, spec.Max)); err != nil {
		return failWith(err)
	}
	return pass(f)
}

// checkInt coerces to int64 and checks the inclusive range.
func checkInt(_ *Frame, _ string, spec Spec, raw any) Outcome {
	n, ok := toInt(raw)
	if !ok {
		return fail(typeMismatch(KindInteger))
	}
	if err := Apply(IntBetween(n, int64(spec.Min), int64(spec.Max))); err != nil {
		return failWith(err)
	}
	return pass(n)
}
