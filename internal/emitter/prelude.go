package emitter

// prelude is prepended to every emitted artifact. It defines the
// namespaced runtime object spec.md §4.4 requires, then destructures it
// into the global scope so unqualified use compiles.
const prelude = `const __lambdawg = {
  Ok: (value) => ({ __tag: "Ok", value }),
  Error: (error) => ({ __tag: "Error", error }),
  Some: (value) => ({ __tag: "Some", value }),
  None: { __tag: "None" },
  isOk: (r) => r.__tag === "Ok",
  isError: (r) => r.__tag === "Error",
  isSome: (o) => o.__tag === "Some",
  isNone: (o) => o.__tag === "None",
  unwrap: (r) => {
    if (r.__tag === "Error") throw r.error;
    if (r.__tag === "Ok" || r.__tag === "Some") return r.value;
    return r;
  },
  match: (value, cases) => {
    const handler = cases[value.__tag];
    if (!handler) throw new Error("non-exhaustive pattern match");
    return handler(value);
  },
  map: (f, xs) => xs.map(f),
  filter: (f, xs) => xs.filter(f),
  fold: (f, init, xs) => xs.reduce(f, init),
  sum: (xs) => xs.reduce((a, b) => a + b, 0),
  length: (xs) => xs.length,
  head: (xs) => (xs.length > 0 ? __lambdawg.Some(xs[0]) : __lambdawg.None),
  tail: (xs) => (xs.length > 0 ? __lambdawg.Some(xs.slice(1)) : __lambdawg.None),
  show: (v) => (typeof v === "string" ? v : JSON.stringify(v)),
  identity: (v) => v,
  tap: (f, v) => {
    f(v);
    return v;
  },
  pipe: (value, fn) => fn(value),
};

const {
  Ok, Error, Some, None, isOk, isError, isSome, isNone,
  unwrap, match, map, filter, fold, sum, length, head, tail, show,
  identity, tap, pipe,
} = __lambdawg;
`
