// seehuhn.de/go/xmptags - human-readable XMP tag dictionaries in Go
// Copyright (C) 2024  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package xmptags

import (
	"sort"
	"strings"

	"golang.org/x/exp/maps"
)

// A valueTranslator rewrites a raw scalar value into its display form.
// Translators are indexed by the original qualified property name.
type valueTranslator func(value string) (string, error)

// An arrayTranslator renders a whole array, overriding the default
// comma-joined form.
type arrayTranslator func(items Array) (string, error)

// describeScalar renders a simple value.  Translator errors are
// swallowed; the raw value passes through.
func describeScalar(qname, value string) string {
	if tr, ok := valueTranslators[qname]; ok {
		if d, err := tr(value); err == nil {
			return d
		}
	}
	return value
}

// describeArray renders an array value as the comma-joined
// descriptions of its items, unless a per-tag translator overrides it.
func describeArray(qname string, items Array) string {
	if tr, ok := arrayTranslators[qname]; ok {
		if d, err := tr(items); err == nil {
			return d
		}
	}
	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = describeItem(it)
	}
	return strings.Join(parts, ", ")
}

func describeItem(it Item) string {
	switch it := it.(type) {
	case Tag:
		return it.Description
	case Struct:
		return describeMembers(it)
	}
	return ""
}

// describeStruct renders a structure value as "Key: Value" pairs
// joined by "; ".
func describeStruct(qname string, st Struct) string {
	return describeMembers(st)
}

func describeMembers(st Struct) string {
	keys := maps.Keys(st)
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, key := range keys {
		name := key
		if display, ok := iptcCoreKey[key]; ok {
			name = display
		}
		parts[i] = name + ": " + st[key].Description
	}
	return strings.Join(parts, "; ")
}

// iptcCoreKey maps the field names of the IPTC Core
// CreatorContactInfo structure to their display names.
var iptcCoreKey = map[string]string{
	"CiAdrCity":   "CreatorCity",
	"CiAdrCtry":   "CreatorCountry",
	"CiAdrExtadr": "CreatorAddress",
	"CiAdrPcode":  "CreatorPostalCode",
	"CiAdrRegion": "CreatorRegion",
	"CiEmailWork": "CreatorWorkEmail",
	"CiTelWork":   "CreatorWorkPhone",
	"CiUrlWork":   "CreatorWorkUrl",
}

// enum builds a translator which maps coded values through a table.
// Unknown values pass through verbatim.
func enum(table map[string]string) valueTranslator {
	return func(value string) (string, error) {
		if display, ok := table[value]; ok {
			return display, nil
		}
		return value, nil
	}
}

// valueTranslators holds the display translations for the common
// TIFF/EXIF enumerations.
var valueTranslators = map[string]valueTranslator{
	"tiff:Orientation":              enum(orientationNames),
	"tiff:ResolutionUnit":           enum(resolutionUnitNames),
	"tiff:YCbCrPositioning":         enum(ycbcrPositioningNames),
	"exif:ColorSpace":               enum(colorSpaceNames),
	"exif:ExposureProgram":          enum(exposureProgramNames),
	"exif:MeteringMode":             enum(meteringModeNames),
	"exif:LightSource":              enum(lightSourceNames),
	"exif:ExposureMode":             enum(exposureModeNames),
	"exif:WhiteBalance":             enum(whiteBalanceNames),
	"exif:SceneCaptureType":         enum(sceneCaptureTypeNames),
	"exif:CustomRendered":           enum(customRenderedNames),
	"exif:Contrast":                 enum(contrastNames),
	"exif:Saturation":               enum(saturationNames),
	"exif:Sharpness":                enum(sharpnessNames),
	"exif:GainControl":              enum(gainControlNames),
	"exif:FileSource":               enum(fileSourceNames),
	"exif:SceneType":                enum(sceneTypeNames),
	"exif:SensingMethod":            enum(sensingMethodNames),
	"exif:SubjectDistanceRange":     enum(subjectDistanceRangeNames),
	"exif:FocalPlaneResolutionUnit": enum(resolutionUnitNames),
}

// arrayTranslators holds the array renderings which differ from the
// comma-joined default.
var arrayTranslators = map[string]arrayTranslator{
	"exif:ComponentsConfiguration": func(items Array) (string, error) {
		parts := make([]string, len(items))
		for i, it := range items {
			raw := describeItem(it)
			if c, ok := componentNames[raw]; ok {
				parts[i] = c
			} else {
				parts[i] = raw
			}
		}
		return strings.Join(parts, ", "), nil
	},
}

var componentNames = map[string]string{
	"0": "-",
	"1": "Y",
	"2": "Cb",
	"3": "Cr",
	"4": "R",
	"5": "G",
	"6": "B",
}

var orientationNames = map[string]string{
	"1": "Horizontal (normal)",
	"2": "Mirror horizontal",
	"3": "Rotate 180",
	"4": "Mirror vertical",
	"5": "Mirror horizontal and rotate 270 CW",
	"6": "Rotate 90 CW",
	"7": "Mirror horizontal and rotate 90 CW",
	"8": "Rotate 270 CW",
}

var resolutionUnitNames = map[string]string{
	"1": "None",
	"2": "inches",
	"3": "cm",
}

var ycbcrPositioningNames = map[string]string{
	"1": "Centered",
	"2": "Co-sited",
}

var colorSpaceNames = map[string]string{
	"1":     "sRGB",
	"65535": "Uncalibrated",
}

var exposureProgramNames = map[string]string{
	"0": "Not defined",
	"1": "Manual",
	"2": "Normal program",
	"3": "Aperture priority",
	"4": "Shutter priority",
	"5": "Creative program",
	"6": "Action program",
	"7": "Portrait mode",
	"8": "Landscape mode",
}

var meteringModeNames = map[string]string{
	"0":   "Unknown",
	"1":   "Average",
	"2":   "CenterWeightedAverage",
	"3":   "Spot",
	"4":   "MultiSpot",
	"5":   "Pattern",
	"6":   "Partial",
	"255": "Other",
}

var lightSourceNames = map[string]string{
	"0":   "Unknown",
	"1":   "Daylight",
	"2":   "Fluorescent",
	"3":   "Tungsten (incandescent light)",
	"4":   "Flash",
	"9":   "Fine weather",
	"10":  "Cloudy weather",
	"11":  "Shade",
	"12":  "Daylight fluorescent (D 5700 - 7100K)",
	"13":  "Day white fluorescent (N 4600 - 5400K)",
	"14":  "Cool white fluorescent (W 3900 - 4500K)",
	"15":  "White fluorescent (WW 3200 - 3700K)",
	"17":  "Standard light A",
	"18":  "Standard light B",
	"19":  "Standard light C",
	"20":  "D55",
	"21":  "D65",
	"22":  "D75",
	"23":  "D50",
	"24":  "ISO studio tungsten",
	"255": "Other light source",
}

var exposureModeNames = map[string]string{
	"0": "Auto exposure",
	"1": "Manual exposure",
	"2": "Auto bracket",
}

var whiteBalanceNames = map[string]string{
	"0": "Auto white balance",
	"1": "Manual white balance",
}

var sceneCaptureTypeNames = map[string]string{
	"0": "Standard",
	"1": "Landscape",
	"2": "Portrait",
	"3": "Night scene",
}

var customRenderedNames = map[string]string{
	"0": "Normal process",
	"1": "Custom process",
}

var contrastNames = map[string]string{
	"0": "Normal",
	"1": "Soft",
	"2": "Hard",
}

var saturationNames = map[string]string{
	"0": "Normal",
	"1": "Low saturation",
	"2": "High saturation",
}

var sharpnessNames = map[string]string{
	"0": "Normal",
	"1": "Soft",
	"2": "Hard",
}

var gainControlNames = map[string]string{
	"0": "None",
	"1": "Low gain up",
	"2": "High gain up",
	"3": "Low gain down",
	"4": "High gain down",
}

var fileSourceNames = map[string]string{
	"3": "DSC",
}

var sceneTypeNames = map[string]string{
	"1": "Directly photographed",
}

var sensingMethodNames = map[string]string{
	"1": "Not defined",
	"2": "One-chip color area sensor",
	"3": "Two-chip color area sensor",
	"4": "Three-chip color area sensor",
	"5": "Color sequential area sensor",
	"7": "Trilinear sensor",
	"8": "Color sequential linear sensor",
}

var subjectDistanceRangeNames = map[string]string{
	"0": "Unknown",
	"1": "Macro",
	"2": "Close view",
	"3": "Distant view",
}
