// Package twopoint analyzes two-point correlation functions from
// lattice-QCD simulations — the time-series signals whose exponential
// decay encodes hadron masses.
//
// 🚀 What is twopoint?
//
//	A library that brings together everything between a raw quark
//	propagator and a fitted ground-state energy:
//		• Keyed storage: correlators indexed by label, quark masses,
//		  lattice momentum and source/sink smearing
//		• Contraction: spin-color traces of two propagators and a pair
//		  of Dirac interpolating operators
//		• Momentum projection: discrete Fourier projection with
//		  momentum-shell averaging
//		• Folding: time-reversal folding of (anti)periodic signals
//		• Fitting: nonlinear least squares, effective masses and the
//		  lattice speed of light
//
// Everything is organized under five subpackages:
//
//	correlator/ — Key/Store data model, filters, arithmetic, archives
//	fold/       — periodicity detection and time-reversal folding
//	momentum/   — momentum projection and shell averaging
//	contract/   — propagator tensors, gamma matrices, batch contraction
//	fit/        — least squares, energies, effective masses, c²
//
// Typical pipeline:
//
//	propagators ──contract──▶ spatial C(t,x) ──momentum──▶ C(t;p)
//	      ──fold──▶ folded C(t;p) ──correlator──▶ store ──fit──▶ E₀, m_eff, c²
//
// A small cobra CLI for inspecting saved correlator archives lives under
// cmd/twopoint.
//
//	go get github.com/qcdlab/twopoint
package twopoint
