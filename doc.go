// Package avicon decodes a single still image (typically an application
// icon) into a surface.Surface a windowing layer can use directly.
//
// The decoding runs four stages: the container probe, the codec
// negotiation, the decoding of a single frame and the adaptation of the
// frame into a surface. Any failure releases everything acquired so far;
// on success the surface owns the decoded frame, see Destroy.
package avicon
