// Package stroke classifies single-stroke gestures with the $1 unistroke
// algorithm.
//
// Strokes are resampled to SamplePoints points, rotated so the angle from
// the first point to the centroid is zero, scaled non-uniformly to a
// Size x Size box and centred on the origin. A Recogniser compares a
// normalized stroke with every stored template using a golden-section search
// over ±45° of rotation and reports the closest one with a score in (-∞, 1].
//
// Every gesture is stored twice, as drawn and mirrored, so one template
// covers both drawing directions.
package stroke
