package flex

import (
	"fmt"
	"strconv"
	"strings"
)

// responseGrammar describes the fixed shape of a delimited instrument
// response: segments split on the outer delimiter, fields split on the
// inner delimiter, with an exact field count per segment. Keeping the
// shape as data keeps the index-to-field mapping in one auditable place.
type responseGrammar struct {
	context string // decode context reported in errors
	outer   string // segment delimiter
	inner   string // field delimiter
	fields  int    // exact number of fields per segment
}

var (
	adcSettingsGrammar = responseGrammar{context: "ADC settings readback", outer: ";", inner: ",", fields: 3}
	moduleQueryGrammar = responseGrammar{context: "module inventory query", outer: ";", inner: ",", fields: 2}
)

// split divides raw into segments and fields per the grammar. Any segment
// with a field count different from the expected shape fails the whole
// decode; there is no partial recovery.
func (g responseGrammar) split(raw string) ([][]string, error) {
	segments := strings.Split(raw, g.outer)
	result := make([][]string, 0, len(segments))

	for i, segment := range segments {
		fields := strings.Split(segment, g.inner)
		if len(fields) != g.fields {
			return nil, fmt.Errorf("%w: %s: segment %d has %d fields, expected %d (raw %q)",
				ErrMalformedResponse, g.context, i, len(fields), g.fields, raw)
		}
		result = append(result, fields)
	}

	return result, nil
}

func (g responseGrammar) intField(raw, segment, name string, value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("%w: %s: segment %q has non-integer %s field %q (raw %q)",
			ErrMalformedResponse, g.context, segment, name, value, raw)
	}
	return n, nil
}

// ADCSetting is the decoded integration time setting of one A/D converter,
// one segment of the LRN? 55 response. Time is kept as the literal text
// the instrument sent (e.g. ".00800"); its unit depends on the mode.
type ADCSetting struct {
	Type ADCType
	Mode ADCMode
	Time string
}

// CheckMode verifies that the setting is in the mode the caller assumed.
// A mismatch returns the warning-class ErrUnexpectedMode; the setting
// itself remains valid.
func (s ADCSetting) CheckMode(want ADCMode) error {
	if s.Mode != want {
		return fmt.Errorf("%w: %s ADC reports %s mode, expected %s mode",
			ErrUnexpectedMode, s.Type, s.Mode, want)
	}
	return nil
}

// ParseADCSettings decodes the full ADC integration time readback response
// into one setting per segment, in response order. Segment order follows
// the ADCType enumeration: the high-speed ADC first, the high-resolution
// ADC second.
func ParseADCSettings(raw string) ([]ADCSetting, error) {
	segments, err := adcSettingsGrammar.split(raw)
	if err != nil {
		return nil, err
	}

	settings := make([]ADCSetting, 0, len(segments))
	for _, fields := range segments {
		segment := strings.Join(fields, adcSettingsGrammar.inner)

		typ, err := adcSettingsGrammar.intField(raw, segment, "type", fields[0])
		if err != nil {
			return nil, err
		}
		mode, err := adcSettingsGrammar.intField(raw, segment, "mode", fields[1])
		if err != nil {
			return nil, err
		}

		settings = append(settings, ADCSetting{
			Type: ADCType(typ),
			Mode: ADCMode(mode),
			Time: fields[2],
		})
	}

	return settings, nil
}

// ADCSettingFor decodes the ADC integration time readback response and
// selects the segment of the given ADC type. The ADCType enumeration value
// is the segment index.
func ADCSettingFor(raw string, adcType ADCType) (ADCSetting, error) {
	if !adcType.valid() {
		return ADCSetting{}, fmt.Errorf("%w: unknown ADC type %d", ErrInvalidArgument, int(adcType))
	}

	settings, err := ParseADCSettings(raw)
	if err != nil {
		return ADCSetting{}, err
	}
	if int(adcType) >= len(settings) {
		return ADCSetting{}, fmt.Errorf("%w: %s: no segment %d for %s ADC (raw %q)",
			ErrMalformedResponse, adcSettingsGrammar.context, int(adcType), adcType, raw)
	}

	return settings[adcType], nil
}

// ParseModuleQuery decodes the module inventory response into a slot number
// to model name mapping. Each segment reports "model,revision" for one
// slot, in slot order starting at slot 1; a "0,0" segment marks an empty
// slot and is omitted from the result.
func ParseModuleQuery(raw string) (map[SlotNr]string, error) {
	segments, err := moduleQueryGrammar.split(raw)
	if err != nil {
		return nil, err
	}
	if len(segments) > NumSlots {
		return nil, fmt.Errorf("%w: %s: %d segments exceed the %d mainframe slots (raw %q)",
			ErrMalformedResponse, moduleQueryGrammar.context, len(segments), NumSlots, raw)
	}

	population := make(map[SlotNr]string, len(segments))
	for i, fields := range segments {
		model := strings.TrimSpace(fields[0])
		if model == "" {
			return nil, fmt.Errorf("%w: %s: segment %d has an empty model field (raw %q)",
				ErrMalformedResponse, moduleQueryGrammar.context, i, raw)
		}
		if model == "0" {
			continue // empty slot
		}
		population[SlotNr(i+1)] = model
	}

	return population, nil
}

// ParseCALResult decodes the self-calibration response code.
func ParseCALResult(raw string) (CALResult, error) {
	code, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || code < 0 || code > calResultMax {
		return 0, fmt.Errorf("%w: self-calibration query: result code %q is not an integer in [0, %d]",
			ErrMalformedResponse, raw, calResultMax)
	}
	return CALResult(code), nil
}

// ParseStatus decodes the status byte response.
func ParseStatus(raw string) (int, error) {
	status, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: status byte query: %q is not an integer", ErrMalformedResponse, raw)
	}
	return status, nil
}
