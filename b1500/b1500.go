package b1500

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/arloliu/go-b1500/flex"
	"github.com/arloliu/go-b1500/logger"
	"github.com/arloliu/go-b1500/visa"
)

// DefaultCalibrationTimeout bounds the self-calibration exchange. The
// manual suggests calibration takes about 30 seconds.
const DefaultCalibrationTimeout = 60 * time.Second

// discoveryState tracks the module discovery lifecycle of a session.
type discoveryState int32

const (
	stateUndiscovered discoveryState = iota
	stateDiscovering
	stateDiscovered
)

// Mainframe is the driver for the B1500 mainframe. It owns the transport,
// the module registry and the session-wide timeouts. A Mainframe is created
// with Open and is not safe for concurrent command exchanges; the registry
// lookups are safe for concurrent readers once Open has returned.
type Mainframe struct {
	tr         visa.Transport
	log        logger.Logger
	registry   *Registry
	calTimeout time.Duration
	state      discoveryState
}

// Option is a functional option for configuring a Mainframe.
type Option interface {
	apply(*Mainframe) error
}

type optFunc func(*Mainframe) error

func (f optFunc) apply(mf *Mainframe) error { return f(mf) }

// WithLogger sets the logger used by the driver. The default is the
// package-level logger.
func WithLogger(log logger.Logger) Option {
	return optFunc(func(mf *Mainframe) error {
		if log == nil {
			return errors.New("b1500: logger is nil")
		}
		mf.log = log
		return nil
	})
}

// WithCalibrationTimeout sets the transport timeout applied for the
// duration of a self-calibration exchange. The default is
// DefaultCalibrationTimeout.
func WithCalibrationTimeout(d time.Duration) Option {
	return optFunc(func(mf *Mainframe) error {
		if d <= 0 {
			return fmt.Errorf("b1500: calibration timeout %v is not positive", d)
		}
		mf.calTimeout = d
		return nil
	})
}

// Open creates a Mainframe on the given transport and discovers the
// installed modules. Discovery issues the module inventory query once;
// the resulting registry is frozen before Open returns.
//
// A slot reporting an unsupported model is skipped: its error (wrapping
// flex.ErrUnsupportedModule) is joined into the returned error while the
// remaining slots still resolve, so the returned Mainframe is usable
// alongside a non-nil error.
func Open(ctx context.Context, tr visa.Transport, opts ...Option) (*Mainframe, error) {
	if tr == nil {
		return nil, errors.New("b1500: transport is nil")
	}

	mf := &Mainframe{
		tr:         tr,
		log:        logger.GetLogger(),
		registry:   newRegistry(),
		calTimeout: DefaultCalibrationTimeout,
		state:      stateUndiscovered,
	}
	for _, opt := range opts {
		if err := opt.apply(mf); err != nil {
			return nil, err
		}
	}

	if err := mf.discover(ctx); err != nil {
		if mf.state != stateDiscovered {
			return nil, err
		}
		return mf, err
	}

	return mf, nil
}

// discover runs the undiscovered -> discovering -> discovered transition.
// Once discovered, the registry is never re-queried or mutated again within
// the same session.
func (mf *Mainframe) discover(ctx context.Context) error {
	mf.state = stateDiscovering

	msg, err := flex.NewBuilder().UNTQuery(flex.UNTModeModuleInfo).Message()
	if err != nil {
		return err
	}
	raw, err := mf.tr.Ask(ctx, msg)
	if err != nil {
		return fmt.Errorf("b1500: module inventory query: %w", err)
	}

	population, err := flex.ParseModuleQuery(raw)
	if err != nil {
		return err
	}

	slots := make([]int, 0, len(population))
	for slot := range population {
		slots = append(slots, int(slot))
	}
	sort.Ints(slots)

	var slotErrs error
	for _, slot := range slots {
		model := population[flex.SlotNr(slot)]

		module, err := FromModelName(model, slot)
		if err != nil {
			mf.log.Error("skipping unsupported module", "slot", slot, "model", model)
			slotErrs = errors.Join(slotErrs, err)
			continue
		}
		if err := mf.registry.add(module); err != nil {
			slotErrs = errors.Join(slotErrs, fmt.Errorf("b1500: %w", err))
			continue
		}
		mf.log.Debug("discovered module", "slot", slot, "model", model, "kind", module.Kind().String())
	}

	mf.registry.freeze()
	mf.state = stateDiscovered
	mf.log.Info("module discovery finished", "modules", mf.registry.Size())

	return slotErrs
}

// Registry returns the frozen module registry of the session.
func (mf *Mainframe) Registry() *Registry {
	return mf.registry
}

// EnableChannels enables the specified channels. When channels is empty,
// all channels are enabled.
func (mf *Mainframe) EnableChannels(ctx context.Context, channels ...int) error {
	return mf.write(ctx, flex.NewBuilder().CN(channels...))
}

// DisableChannels disables the specified channels. When channels is empty,
// all channels are disabled.
func (mf *Mainframe) DisableChannels(ctx context.Context, channels ...int) error {
	return mf.write(ctx, flex.NewBuilder().CL(channels...))
}

// SetADCIntegrationTime configures the integration time of the given ADC.
// The optional coefficient (at most one value) refines the mode; see
// flex.Builder.AIT for the documented ranges.
func (mf *Mainframe) SetADCIntegrationTime(ctx context.Context, adcType flex.ADCType, mode flex.ADCMode, coeff ...int) error {
	return mf.write(ctx, flex.NewBuilder().AIT(adcType, mode, coeff...))
}

// UseNPLCForHighSpeedADC sets the high-speed ADC to NPLC mode. The optional
// coefficient defines the number of averaging samples; the instrument
// default is used when it is omitted.
func (mf *Mainframe) UseNPLCForHighSpeedADC(ctx context.Context, n ...int) error {
	return mf.SetADCIntegrationTime(ctx, flex.ADCHighSpeed, flex.ADCModeNPLC, n...)
}

// UseNPLCForHighResolutionADC sets the high-resolution ADC to NPLC mode.
// The optional coefficient defines the number of power line cycles per
// sample; the instrument default is used when it is omitted.
func (mf *Mainframe) UseNPLCForHighResolutionADC(ctx context.Context, n ...int) error {
	return mf.SetADCIntegrationTime(ctx, flex.ADCHighResolution, flex.ADCModeNPLC, n...)
}

// UseManualModeForHighSpeedADC sets the high-speed ADC to manual mode. Use
// n=1 to disable averaging; the instrument default (also 1) is used when
// the coefficient is omitted.
func (mf *Mainframe) UseManualModeForHighSpeedADC(ctx context.Context, n ...int) error {
	return mf.SetADCIntegrationTime(ctx, flex.ADCHighSpeed, flex.ADCModeManual, n...)
}

// ADCSetting reads back the integration time setting of the given ADC and
// verifies it is in the mode the caller assumed. On a mode mismatch the
// decoded setting is still returned, together with an error wrapping
// flex.ErrUnexpectedMode; the caller decides whether to proceed.
func (mf *Mainframe) ADCSetting(ctx context.Context, adcType flex.ADCType, want flex.ADCMode) (flex.ADCSetting, error) {
	msg, err := flex.NewBuilder().LRNQuery(flex.LRNADCSettings).Message()
	if err != nil {
		return flex.ADCSetting{}, err
	}
	raw, err := mf.tr.Ask(ctx, msg)
	if err != nil {
		return flex.ADCSetting{}, fmt.Errorf("b1500: ADC settings readback: %w", err)
	}

	setting, err := flex.ADCSettingFor(raw, adcType)
	if err != nil {
		return flex.ADCSetting{}, err
	}
	if err := setting.CheckMode(want); err != nil {
		mf.log.Warn("ADC mode differs from the expected mode",
			"adc", adcType.String(), "mode", setting.Mode.String(), "expected", want.String())
		return setting, err
	}

	return setting, nil
}

// NPLCForHighSpeedADC reads back the NPLC-mode integration time of the
// high-speed ADC. See ADCSetting for the mode mismatch behavior.
func (mf *Mainframe) NPLCForHighSpeedADC(ctx context.Context) (flex.ADCSetting, error) {
	return mf.ADCSetting(ctx, flex.ADCHighSpeed, flex.ADCModeNPLC)
}

// NPLCForHighResolutionADC reads back the NPLC-mode integration time of the
// high-resolution ADC. See ADCSetting for the mode mismatch behavior.
func (mf *Mainframe) NPLCForHighResolutionADC(ctx context.Context) (flex.ADCSetting, error) {
	return mf.ADCSetting(ctx, flex.ADCHighResolution, flex.ADCModeNPLC)
}

// ManualModeForHighSpeedADC reads back the manual-mode averaging setting of
// the high-speed ADC. See ADCSetting for the mode mismatch behavior.
func (mf *Mainframe) ManualModeForHighSpeedADC(ctx context.Context) (flex.ADCSetting, error) {
	return mf.ADCSetting(ctx, flex.ADCHighSpeed, flex.ADCModeManual)
}

// SetAutozeroEnabled enables or disables offset cancelling of the
// high-resolution ADC. Disabling it roughly halves the integration time at
// the cost of accuracy.
func (mf *Mainframe) SetAutozeroEnabled(ctx context.Context, enable bool) error {
	return mf.write(ctx, flex.NewBuilder().AZ(enable))
}

// Reset performs an instrument reset. This does not clear the error queue.
func (mf *Mainframe) Reset(ctx context.Context) error {
	return mf.write(ctx, flex.NewBuilder().RST())
}

// Status queries the status byte.
func (mf *Mainframe) Status(ctx context.Context) (int, error) {
	msg, err := flex.NewBuilder().STBQuery().Message()
	if err != nil {
		return 0, err
	}
	raw, err := mf.tr.Ask(ctx, msg)
	if err != nil {
		return 0, fmt.Errorf("b1500: status byte query: %w", err)
	}
	return flex.ParseStatus(raw)
}

// SelfCalibration calibrates the addressed unit and returns the decoded
// result. When slot is omitted, all modules and the mainframe are
// calibrated. Failed modules are disabled by the instrument and can only
// be re-enabled by the recover command.
//
// The exchange runs under the calibration timeout; the previous transport
// timeout is restored before SelfCalibration returns, on every path.
func (mf *Mainframe) SelfCalibration(ctx context.Context, slot ...flex.SlotNr) (flex.CALResult, error) {
	msg, err := flex.NewBuilder().CALQuery(slot...).Message()
	if err != nil {
		return 0, err
	}

	restore := mf.tr.SetTimeout(mf.calTimeout)
	defer restore()

	raw, err := mf.tr.Ask(ctx, msg)
	if err != nil {
		return 0, fmt.Errorf("b1500: self-calibration query: %w", err)
	}

	result, err := flex.ParseCALResult(raw)
	if err != nil {
		return 0, err
	}
	if !result.Passed() {
		mf.log.Warn("self-calibration reported failures",
			"slots", result.FailedSlots(), "mainframe", result.MainframeFailed())
	}

	return result, nil
}

// ErrorMessage reads one error from the head of the error queue and removes
// it from the queue. The response is returned literally: a numeric code and
// a quoted message, optionally carrying a slot annotation inside the quotes
// (e.g. `305,"Excess current in HPSMU.;SLOT1"`). The free-text portion is
// instrument-defined and not structured further. If no error occurred, the
// instrument returns `0,"No Error."`.
func (mf *Mainframe) ErrorMessage(ctx context.Context, mode ...flex.ERRXMode) (string, error) {
	msg, err := flex.NewBuilder().ERRXQuery(mode...).Message()
	if err != nil {
		return "", err
	}
	raw, err := mf.tr.Ask(ctx, msg)
	if err != nil {
		return "", fmt.Errorf("b1500: error queue query: %w", err)
	}
	return raw, nil
}

func (mf *Mainframe) write(ctx context.Context, b *flex.Builder) error {
	msg, err := b.Message()
	if err != nil {
		return err
	}
	if err := mf.tr.Write(ctx, msg); err != nil {
		return fmt.Errorf("b1500: write %q: %w", msg, err)
	}
	return nil
}
