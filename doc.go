// Package hepvec provides physics vectors (2D, 3D and Lorentz) whose
// coordinates may be stored in any of several representations, computed by
// interchangeable numeric backends.
//
// # Representations
//
// A vector is made of up to three coordinate groups: azimuthal (x, y or
// rho, phi), longitudinal (z, theta or eta) and temporal (t or tau).
// Every operation accepts any combination and returns results in the
// representation the computation naturally produces, so no conversion
// happens unless asked for.
//
//	p, _ := hepvec.Obj(object.F("pt", 50), object.F("phi", 0.3), object.F("eta", 1.1), object.F("mass", 0.105))
//	q := object.FromXYZT(1, 2, 3, 10)
//	sum, err := p.(*object.Momentum4D).Add(q)
//
// Momentum synonyms (px, pt, E, mass, ...) select the momentum flavor; a
// result is momentum-flavored only when every operand is.
//
// # Backends
//
// Four backends share the same method sets:
//
//   - object: one vector of float64 (package object)
//   - columnar: struct-of-arrays columns (package columnar)
//   - jagged: variable-length lists of records per event (package jagged)
//   - symbolic: expression trees (package symbolic)
//
// When operands of different backends meet, the backend with the highest
// precedence (symbolic < object < columnar < jagged) computes the result.
// Symbolic vectors never mix with numeric ones.
//
// # Storage
//
// Columnar and jagged arrays are stored with Save and Load (package persist)
// in any blobstore.BlobStore: local files, memory, S3 or MinIO.
//
//	store := blobstore.NewLocalStore("./data")
//	err := hepvec.Save(ctx, store, "muons.hvec", muons, persist.WithCompression(persist.CompressionZstd))
//	muons, err = hepvec.Load(ctx, store, "muons.hvec")
//
// # Observability
//
// Configure installs a structured Logger and a MetricsCollector for every
// dispatched operation and storage call:
//
//	m := &hepvec.BasicMetricsCollector{}
//	hepvec.Configure(hepvec.WithLogLevel(slog.LevelDebug), hepvec.WithMetricsCollector(m))
package hepvec
