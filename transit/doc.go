// Package transit derives orbital phase for an observation set from a
// transit light-curve model.
//
// The physical model is injected through the [Model] interface so any
// limb-darkened light-curve code can be plugged in. [Box] is a uniform-disk
// stand-in for demos and tests.
//
//	phased, err := transit.Apply(set, params, myModel)
//	tmpl, err := template.Build(phased, template.OutOfTransit, k)
package transit
