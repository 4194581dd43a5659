package charsheet

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/charsheet/pkg/cache"
	"github.com/dmitrymomot/charsheet/pkg/form"
	"github.com/dmitrymomot/charsheet/pkg/logger"
)

// View is the state of a sheet returned by every command.
type View struct {
	ID      string         `json:"id"`
	Layout  Layout         `json:"layout"`
	Valid   bool           `json:"valid"`
	Pending bool           `json:"pending"`
	Errors  []string       `json:"errors"`
	Values  map[string]any `json:"values,omitempty"`

	// Remark is set when the class changes.
	Remark string `json:"remark,omitempty"`
	// Index is the position of an appended entry.
	Index *int `json:"index,omitempty"`
	// Submitted and Record are set by Submit.
	Submitted bool  `json:"submitted,omitempty"`
	Record    *User `json:"record,omitempty"`
}

// Sheet is one editing session. Commands on a sheet are serialized.
type Sheet struct {
	ID     uuid.UUID
	Layout Layout

	mu   sync.Mutex
	form *form.Form[User]
}

func (s *Sheet) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.form.Dispose()
}

// Service owns the sheet sessions.
type Service struct {
	cfg        Config
	layout     Layout
	trigger    form.Trigger
	dir        EmailDirectory
	messages   form.Messages
	emailGuard form.Guard
	phoneGuard form.Guard
	sheets     *cache.LRUCache[uuid.UUID, *Sheet]
	log        *slog.Logger
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithLogger sets the service logger.
func WithLogger(l *slog.Logger) ServiceOption {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// NewService validates cfg and creates a service checking e-mail duplicates
// against dir. A nil dir disables the duplicate check.
func NewService(cfg Config, dir EmailDirectory, opts ...ServiceOption) (*Service, error) {
	s := &Service{
		cfg:      cfg,
		dir:      dir,
		messages: form.DefaultMessages(),
		log:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}

	var err error
	if s.layout, err = ParseLayout(cfg.Layout); err != nil {
		return nil, err
	}
	if s.trigger, err = parseTrigger(cfg.LookupTrigger); err != nil {
		return nil, err
	}
	if cfg.MessagesPath != "" {
		if s.messages, err = form.LoadMessages(cfg.MessagesPath); err != nil {
			return nil, err
		}
	}
	if cfg.EmailGuard != "" {
		if s.emailGuard, err = form.ExprGuard(cfg.EmailGuard); err != nil {
			return nil, err
		}
	}
	if cfg.PhoneGuard != "" {
		if s.phoneGuard, err = form.ExprGuard(cfg.PhoneGuard); err != nil {
			return nil, err
		}
	}

	s.sheets = cache.NewLRUCache[uuid.UUID, *Sheet](max(cfg.SessionCapacity, 1))
	s.sheets.SetIdleTTL(cfg.SessionIdleTTL)
	s.sheets.SetEvictCallback(func(id uuid.UUID, sheet *Sheet) {
		s.log.Debug("sheet closed", logger.Component("charsheet"), logger.SessionID(id))
		// The evicting goroutine may hold the cache lock; dispose outside it.
		go sheet.close()
	})

	return s, nil
}

// Layout returns the layout of new sheets.
func (s *Service) Layout() Layout { return s.layout }

// Run sweeps idle sheets until ctx is done.
func (s *Service) Run(ctx context.Context) error {
	if s.cfg.SweepInterval <= 0 || s.cfg.SessionIdleTTL <= 0 {
		<-ctx.Done()
		return nil
	}
	ticker := time.NewTicker(s.cfg.SweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			s.sheets.Clear()
			return nil
		case <-ticker.C:
			if n := s.sheets.Sweep(); n > 0 {
				s.log.InfoContext(ctx, "idle sheets closed",
					logger.Component("charsheet"),
					slog.Int("count", n),
				)
			}
		}
	}
}

// Create opens a new sheet.
func (s *Service) Create(ctx context.Context) (View, error) {
	root, err := NewSheet(s.layout,
		WithDirectory(s.dir),
		WithLookupTrigger(s.trigger),
		WithEmailGuard(s.emailGuard),
		WithPhoneGuard(s.phoneGuard),
	)
	if err != nil {
		return View{}, err
	}

	sheet := &Sheet{ID: uuid.New(), Layout: s.layout}
	log := s.log.With(logger.Component("charsheet"), logger.SessionID(sheet.ID))
	opts := []form.Option[User]{
		form.WithMessages[User](s.messages),
		form.WithLogger[User](log),
		form.OnFailed[User](func(errs []string) {
			log.Info("sheet rejected", slog.Int("errors", len(errs)))
		}),
	}
	if s.cfg.RegisterOnSubmit && s.dir != nil {
		opts = append(opts, form.OnSucceeded(func(u User) {
			s.register(log, u)
		}))
	}
	sheet.form = form.New(root, BuildUser(s.layout), opts...)
	v, err := s.view(sheet)
	if err != nil {
		return View{}, err
	}
	s.sheets.Put(sheet.ID, sheet)

	log.InfoContext(ctx, "sheet opened", slog.String("layout", string(s.layout)))
	return v, nil
}

func (s *Service) register(log *slog.Logger, u User) {
	emails := make([]string, 0, len(u.Emails))
	for _, e := range u.Emails {
		emails = append(emails, e.Email)
	}
	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.SubmitTimeout)
	defer cancel()
	if err := s.dir.Register(ctx, emails...); err != nil {
		log.ErrorContext(ctx, "failed to register emails", logger.Error(err))
	}
}

// Get returns the sheet state including its values.
func (s *Service) Get(_ context.Context, id string) (View, error) {
	var v View
	err := s.withSheet(id, func(sheet *Sheet) error {
		var err error
		v, err = s.view(sheet)
		v.Values = sheet.form.Value()
		return err
	})
	return v, err
}

// ChangeField sets the field at path.
func (s *Service) ChangeField(_ context.Context, id, path string, value any) (View, error) {
	var v View
	err := s.withSheet(id, func(sheet *Sheet) error {
		if _, err := sheet.form.OnFieldChange(path, value); err != nil {
			return err
		}
		var err error
		if v, err = s.view(sheet); err != nil {
			return err
		}
		if form.ParsePath(path).String() == sheet.Layout.ClassPath() {
			classID, err := form.Get[int](sheet.form.Root(), sheet.Layout.ClassPath())
			if err == nil && classID != 0 {
				v.Remark = ClassRemark(classID)
			}
		}
		return nil
	})
	return v, err
}

// Blur signals that the field at path lost focus.
func (s *Service) Blur(_ context.Context, id, path string) (View, error) {
	return s.command(id, func(f *form.Form[User]) error {
		_, err := f.OnFieldBlur(path)
		return err
	})
}

// Append adds an entry to the named collection.
func (s *Service) Append(_ context.Context, id, collection string) (View, error) {
	var idx int
	v, err := s.command(id, func(f *form.Form[User]) error {
		var err error
		idx, _, err = f.OnCollectionAppend(collection)
		return err
	})
	if err != nil {
		return v, err
	}
	v.Index = &idx
	return v, nil
}

// Remove deletes entry index of the named collection.
func (s *Service) Remove(_ context.Context, id, collection string, index int) (View, error) {
	return s.command(id, func(f *form.Form[User]) error {
		_, err := f.OnCollectionRemove(collection, index)
		return err
	})
}

// DropRule removes rule from the field at path.
func (s *Service) DropRule(_ context.Context, id, path, rule string) (View, error) {
	return s.command(id, func(f *form.Form[User]) error {
		_, err := f.MutateRules(path, form.RemoveRule(rule))
		return err
	})
}

// Submit validates the sheet, waiting up to the submit timeout for pending
// e-mail checks.
func (s *Service) Submit(ctx context.Context, id string) (View, error) {
	var v View
	err := s.withSheet(id, func(sheet *Sheet) error {
		if s.cfg.SubmitTimeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, s.cfg.SubmitTimeout)
			defer cancel()
		}
		out, err := sheet.form.Submit(ctx)
		if err != nil {
			return err
		}
		if v, err = s.view(sheet); err != nil {
			return err
		}
		v.Submitted = out.Succeeded
		if out.Succeeded {
			v.Record = &out.Record
		}
		return nil
	})
	return v, err
}

// Dispose closes the sheet and cancels its pending checks.
func (s *Service) Dispose(_ context.Context, id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return ErrSheetNotFound
	}
	if _, ok := s.sheets.Remove(uid); !ok {
		return ErrSheetNotFound
	}
	return nil
}

func (s *Service) command(id string, fn func(*form.Form[User]) error) (View, error) {
	var v View
	err := s.withSheet(id, func(sheet *Sheet) error {
		if err := fn(sheet.form); err != nil {
			return err
		}
		var err error
		v, err = s.view(sheet)
		return err
	})
	return v, err
}

func (s *Service) withSheet(id string, fn func(*Sheet) error) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return ErrSheetNotFound
	}
	sheet, ok := s.sheets.Get(uid)
	if !ok {
		return ErrSheetNotFound
	}
	sheet.mu.Lock()
	defer sheet.mu.Unlock()
	return fn(sheet)
}

// view must be called with the sheet locked.
func (s *Service) view(sheet *Sheet) (View, error) {
	errs, err := sheet.form.Errors()
	if err != nil {
		return View{}, err
	}
	return View{
		ID:      sheet.ID.String(),
		Layout:  sheet.Layout,
		Valid:   sheet.form.Valid(),
		Pending: sheet.form.Pending(),
		Errors:  errs,
	}, nil
}
