package main

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/katalvlaran/patterns/abstractfactory"
	"github.com/katalvlaran/patterns/adapter"
	"github.com/katalvlaran/patterns/bridge"
	"github.com/katalvlaran/patterns/builder"
	"github.com/katalvlaran/patterns/chain"
	"github.com/katalvlaran/patterns/command"
	"github.com/katalvlaran/patterns/composite"
	"github.com/katalvlaran/patterns/config"
	"github.com/katalvlaran/patterns/decorator"
	"github.com/katalvlaran/patterns/facade"
	"github.com/katalvlaran/patterns/factory"
	"github.com/katalvlaran/patterns/flyweight"
	"github.com/katalvlaran/patterns/interpreter"
	"github.com/katalvlaran/patterns/iterator"
	"github.com/katalvlaran/patterns/mediator"
	"github.com/katalvlaran/patterns/memento"
	"github.com/katalvlaran/patterns/observer"
	"github.com/katalvlaran/patterns/prototype"
	"github.com/katalvlaran/patterns/proxy"
	"github.com/katalvlaran/patterns/singleton"
	"github.com/katalvlaran/patterns/state"
	"github.com/katalvlaran/patterns/strategy"
	"github.com/katalvlaran/patterns/template"
	"github.com/katalvlaran/patterns/visitor"
)

//go:embed sample.log
var sampleLog string

// demos holds the dependencies of the runnable examples.
type demos struct {
	out  io.Writer
	in   io.Reader
	lggr *zap.Logger
	cfg  config.Config
	file string
}

func (d *demos) register(inv *command.Invoker) error {
	all := map[string]func(context.Context) error{
		// behavioral
		"chain":       d.chain,
		"command":     d.command,
		"interpreter": d.interpreter,
		"iterator":    d.iterator,
		"mediator":    d.mediator,
		"memento":     d.memento,
		"observer":    d.observer,
		"state":       d.state,
		"strategy":    d.strategy,
		"template":    d.template,
		"visitor":     d.visitor,
		// creational
		"abstractfactory": d.abstractFactory,
		"builder":         d.builder,
		"factory":         d.factory,
		"prototype":       d.prototype,
		"singleton":       d.singleton,
		// structural
		"adapter":   d.adapter,
		"bridge":    d.bridge,
		"composite": d.composite,
		"decorator": d.decorator,
		"facade":    d.facade,
		"flyweight": d.flyweight,
		"proxy":     d.proxy,
	}
	for name, fn := range all {
		if err := inv.Register(name, command.CommandFunc(fn)); err != nil {
			return err
		}
	}

	return nil
}

func (d *demos) chain(context.Context) error {
	h := chain.Chain(
		chain.NewConsoleHandler(d.out, chain.AllLevels()...),
		chain.NewEmailHandler(d.out, chain.Error),
		chain.NewFileHandler(d.out, chain.Info),
		chain.NewZapHandler(d.lggr, chain.Error, chain.Warning),
	)
	h.Handle("Test error", chain.Error)
	h.Handle("Test info", chain.Info)

	return nil
}

func (d *demos) command(ctx context.Context) error {
	reader := command.NewLogReader(d.out, []command.Response{
		{Status: 200, Size: 5120},
		{Status: 503, Size: 120},
		{Status: 200, Size: 20480},
		{Status: 500, Size: 64},
	})
	inv := command.NewInvoker()
	if err := inv.Register("biggestResponse", command.BiggestResponseCommand{Reader: reader}); err != nil {
		return err
	}
	if err := inv.Register("getMostFails", command.MostFailsCommand{Reader: reader}); err != nil {
		return err
	}

	for _, name := range []string{"biggestResponse", "getMostFails"} {
		if err := inv.Execute(ctx, name); err != nil {
			return err
		}
	}

	return nil
}

func (d *demos) interpreter(context.Context) error {
	ctx := interpreter.NewContext(interpreter.DefaultDatabase())
	queries := []interpreter.Expression{
		interpreter.Select{Column: 1, From: interpreter.From{Table: "people"}},
		interpreter.Select{Column: 1, From: interpreter.From{
			Table: "people",
			Where: &interpreter.Where{Filter: interpreter.Equals(1, "Ivan")},
		}},
	}
	for _, q := range queries {
		rows, err := q.Interpret(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(d.out, strings.Join(rows, ", "))
	}

	return nil
}

func (d *demos) iterator(context.Context) error {
	repo := iterator.NewLogRepository(strings.NewReader(sampleLog))
	if d.file != "" {
		var err error
		if repo, err = iterator.OpenLogRepository(d.file); err != nil {
			return err
		}
	}
	defer repo.Close()

	it := repo.LogIterator()
	for e := range iterator.All(iterator.Iterator[iterator.LogEntry](it)) {
		fmt.Fprintln(d.out, e)
	}

	return it.Err()
}

func (d *demos) mediator(context.Context) error {
	m := mediator.New[string]()
	observe := func(event string) func() {
		return func() {
			v, _ := m.Get(event)
			fmt.Fprintf(d.out, "%s do sth, new data is %s\n", event, v)
		}
	}
	m.Subscribe("event1", observe("event1"))
	m.Subscribe("event2", observe("event2"))

	m.Set("event1", "some random data")
	m.Set("event1", "another data")
	m.Set("event2", "data for the second observer")

	return nil
}

func (d *demos) memento(context.Context) error {
	var history memento.Caretaker
	o := memento.NewOriginator("initial state", d.out)
	history.Push(o.Save())

	o.SetState("new state")

	m, err := history.Pop()
	if err != nil {
		return err
	}

	return o.Restore(m)
}

func (d *demos) observer(context.Context) error {
	r := observer.NewInputReader(d.in)
	r.Register(observer.KeywordObserver{Out: d.out})
	r.Register(observer.NumberObserver{Out: d.out})

	if err := r.Read(); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}

func (d *demos) state(context.Context) error {
	ctx := state.NewContext(d.out)
	for _, name := range []string{"Ivan", "Mariq", "Ana", "Zdravko", "Yordan", "Zahari", "Todor"} {
		ctx.Handle(name)
	}

	return nil
}

func (d *demos) strategy(context.Context) error {
	bar := strategy.NewBar(strategy.NormalPrice())
	fmt.Fprintln(d.out, bar.PriceFor(11), bar.PriceFor(15))

	bar.SetStrategy(strategy.HappyHourPrice())
	fmt.Fprintln(d.out, bar.PriceFor(11), bar.PriceFor(15))

	return nil
}

func (d *demos) template(context.Context) error {
	template.Play(d.out, template.Mario{})
	template.Play(d.out, &template.Tetris{Lines: 4})

	return nil
}

func (d *demos) visitor(context.Context) error {
	root := visitor.NewTreeNode(3)
	root.Add(
		visitor.NewTreeNode(4, visitor.NewTreeNode(6), visitor.NewLeaf(7)),
		visitor.NewTreeNode(5, visitor.NewLeaf(8), visitor.NewTreeNode(9)),
	)
	root.Accept(visitor.PrintVisitor{Out: d.out})

	return nil
}

func (d *demos) abstractFactory(context.Context) error {
	for _, platform := range []string{"windows", "linux"} {
		f, err := abstractfactory.ForPlatform(platform)
		if err != nil {
			return err
		}
		for _, t := range []abstractfactory.ButtonType{abstractfactory.Close, abstractfactory.Send, abstractfactory.Reject} {
			b, err := f.CreateButton(t)
			if err != nil {
				return err
			}
			b.Click(d.out)
		}
	}

	return nil
}

func (d *demos) builder(context.Context) error {
	e := builder.NewHeavyEntryBuilder().
		WithMField1("test1").
		WithMField2("test2").
		WithMField3("test3").
		WithMField4("test4").
		Build()
	fmt.Fprintln(d.out, e)

	return nil
}

func (d *demos) factory(context.Context) error {
	for _, t := range []factory.Type{factory.OrdinaryCarType, factory.TruckType, factory.BusType} {
		car, err := factory.NewCar(t)
		if err != nil {
			return err
		}
		fmt.Fprintln(d.out, car.Move())
		fmt.Fprintln(d.out, car.Park())
	}

	return nil
}

func (d *demos) prototype(context.Context) error {
	trees := []prototype.Tree{prototype.NewChristmasTree(100), prototype.NewOldTree(200)}
	for i, c := range prototype.CloneAll(trees) {
		fmt.Fprintf(d.out, "%T %s cloned as %s\n", c, trees[i].ID(), c.ID())
	}

	return nil
}

func (d *demos) singleton(context.Context) error {
	singleton.Instance().PrintSomething(d.out)
	fmt.Fprintln(d.out, "same shop:", singleton.Instance() == singleton.Instance())

	return nil
}

func (d *demos) adapter(context.Context) error {
	shapes := []adapter.TwoDimensionalShape{
		adapter.Triangle{},
		adapter.Rectangle{},
		adapter.Adapt(adapter.Sphere{}),
		adapter.Adapt(adapter.Pyramid{}),
	}
	for _, s := range shapes {
		adapter.ResizeByFactor2(d.out, s)
	}

	return nil
}

func (d *demos) bridge(context.Context) error {
	vehicles := []bridge.Vehicle{
		bridge.NewOrdinaryCar(bridge.Construct{}, bridge.Assemble{}),
		bridge.NewBus(bridge.Construct{}, bridge.Assemble{}),
	}
	for _, v := range vehicles {
		v.Build(d.out)
	}

	return nil
}

func (d *demos) composite(context.Context) error {
	page1 := composite.NewPage("Page 1")
	page1.Add(composite.Button{}, composite.Button{}, composite.Button{}, composite.Scroll{})
	page2 := composite.NewPage("Page 2")
	page2.Add(composite.Button{}, composite.Scroll{})

	root := composite.NewPage("Main page")
	root.Add(page1, page2)
	root.Print(d.out, 0)

	return nil
}

func (d *demos) decorator(context.Context) error {
	w := decorator.WithVerticalScroll(decorator.WithHorizontalScroll(decorator.BasicWindow{}))
	fmt.Fprintln(d.out, w.Description())
	w.Draw(d.out)

	return nil
}

func (d *demos) facade(context.Context) error {
	facade.NewComputer(d.out, []byte("test something")).Start()

	return nil
}

func (d *demos) flyweight(ctx context.Context) error {
	names := []string{"building 1", "building 2", "building 3", "building 4", "building 5"}
	cache := flyweight.NewCache()
	out := &lockedWriter{w: d.out}

	pool, err := flyweight.NewPool(ctx,
		flyweight.WithWorkers(d.cfg.FlyweightWorkers),
		flyweight.WithTimeout(d.cfg.FlyweightTimeout),
		flyweight.WithLogger(d.lggr),
	)
	if err != nil {
		return err
	}
	for range 5 {
		err := pool.Submit(func(ctx context.Context) error {
			for size := 10; size <= 50; size += 10 {
				if err := ctx.Err(); err != nil {
					return err
				}
				flyweight.HandlerFor(cache, names[(size-1)/10], out).Create(size)
			}
			return nil
		})
		if err != nil {
			return err
		}
	}
	if err := pool.Shutdown(ctx); err != nil {
		return err
	}
	fmt.Fprintln(d.out, "Cache size is:", cache.Size())

	return nil
}

func (d *demos) proxy(ctx context.Context) error {
	opts := []proxy.Option{proxy.WithAttempts(d.cfg.ProxyLoadAttempts), proxy.WithLogger(d.lggr)}
	image1 := proxy.NewProxyImage("PNG_IMG123.png", d.out, opts...)
	image2 := proxy.NewProxyImage("PNG_IMG1234.png", d.out, opts...)

	for _, img := range []*proxy.ProxyImage{image1, image1, image2, image2} {
		if err := img.DisplayContext(ctx, d.out); err != nil {
			return err
		}
	}

	return nil
}

// lockedWriter serializes writes from the flyweight workers.
type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Write(p)
}
