package core

import (
	"fmt"
	"strings"
)

// RoadClass is the functional class of a road segment.
type RoadClass uint8

// Road classes. The zero value is RoadClassOther.
const (
	RoadClassOther RoadClass = iota
	RoadClassMotorway
	RoadClassTrunk
	RoadClassPrimary
	RoadClassSecondary
	RoadClassTertiary
	RoadClassResidential
	RoadClassUnclassified
	RoadClassService
	RoadClassRoad
	RoadClassTrack
	RoadClassBridleway
	RoadClassSteps
	RoadClassCycleway
	RoadClassPath
	RoadClassLivingStreet
	RoadClassFootway
	RoadClassPedestrian
)

var roadClassNames = [...]string{
	"other", "motorway", "trunk", "primary", "secondary", "tertiary",
	"residential", "unclassified", "service", "road", "track", "bridleway",
	"steps", "cycleway", "path", "living_street", "footway", "pedestrian",
}

// String returns the lower-case tag value, e.g. "living_street".
func (rc RoadClass) String() string {
	if int(rc) < len(roadClassNames) {
		return roadClassNames[rc]
	}

	return fmt.Sprintf("RoadClass(%d)", uint8(rc))
}

// ParseRoadClass maps a tag value to a RoadClass. Unknown values are an error.
func ParseRoadClass(s string) (RoadClass, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return RoadClassOther, nil
	}
	for i, name := range roadClassNames {
		if name == s {
			return RoadClass(i), nil
		}
	}

	return RoadClassOther, fmt.Errorf("core: unknown road class %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (rc RoadClass) MarshalText() ([]byte, error) { return []byte(rc.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (rc *RoadClass) UnmarshalText(b []byte) error {
	v, err := ParseRoadClass(string(b))
	if err != nil {
		return err
	}
	*rc = v

	return nil
}

// TrackType is the surface grade of a track (grade1 = solid ... grade5 = soft).
type TrackType uint8

// Track grades. TrackTypeMissing means the segment carries no grade.
const (
	TrackTypeMissing TrackType = iota
	TrackTypeGrade1
	TrackTypeGrade2
	TrackTypeGrade3
	TrackTypeGrade4
	TrackTypeGrade5
)

var trackTypeNames = [...]string{"missing", "grade1", "grade2", "grade3", "grade4", "grade5"}

func (tt TrackType) String() string {
	if int(tt) < len(trackTypeNames) {
		return trackTypeNames[tt]
	}

	return fmt.Sprintf("TrackType(%d)", uint8(tt))
}

// ParseTrackType maps a tag value to a TrackType; "" means missing.
func ParseTrackType(s string) (TrackType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return TrackTypeMissing, nil
	}
	for i, name := range trackTypeNames {
		if name == s {
			return TrackType(i), nil
		}
	}

	return TrackTypeMissing, fmt.Errorf("core: unknown track type %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (tt TrackType) MarshalText() ([]byte, error) { return []byte(tt.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (tt *TrackType) UnmarshalText(b []byte) error {
	v, err := ParseTrackType(string(b))
	if err != nil {
		return err
	}
	*tt = v

	return nil
}

// RoadEnvironment describes what the segment runs on or through.
type RoadEnvironment uint8

// Road environments. Ferry segments are never used by round-trip searches.
const (
	EnvironmentOther RoadEnvironment = iota
	EnvironmentRoad
	EnvironmentFerry
	EnvironmentTunnel
	EnvironmentBridge
	EnvironmentFord
)

var environmentNames = [...]string{"other", "road", "ferry", "tunnel", "bridge", "ford"}

func (env RoadEnvironment) String() string {
	if int(env) < len(environmentNames) {
		return environmentNames[env]
	}

	return fmt.Sprintf("RoadEnvironment(%d)", uint8(env))
}

// ParseRoadEnvironment maps a tag value to a RoadEnvironment; "" means other.
func ParseRoadEnvironment(s string) (RoadEnvironment, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return EnvironmentOther, nil
	}
	for i, name := range environmentNames {
		if name == s {
			return RoadEnvironment(i), nil
		}
	}

	return EnvironmentOther, fmt.Errorf("core: unknown road environment %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (env RoadEnvironment) MarshalText() ([]byte, error) { return []byte(env.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (env *RoadEnvironment) UnmarshalText(b []byte) error {
	v, err := ParseRoadEnvironment(string(b))
	if err != nil {
		return err
	}
	*env = v

	return nil
}

// EdgeAttributes groups the road attributes used for scoring and weighting.
type EdgeAttributes struct {
	RoadClass   RoadClass       `json:"road_class" yaml:"road_class"`
	TrackType   TrackType       `json:"track_type" yaml:"track_type"`
	Environment RoadEnvironment `json:"environment" yaml:"environment"`
}
