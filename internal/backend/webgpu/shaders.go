//go:build windows

package webgpu

// WGSL compute shaders. Both kernels take the same geometry table layout as
// the CPU engine: row-major offsets, decoded per invocation.

// workgroupSize is the default number of threads per workgroup.
const workgroupSize = 256

// sumAxisShader sums one fiber per invocation.
// geom: offsets[rank], then offsets of the shape without the axis[rank-1].
const sumAxisShader = `
@group(0) @binding(0) var<storage, read> input: array<f32>;
@group(0) @binding(1) var<storage, read_write> result: array<f32>;
@group(0) @binding(2) var<storage, read> geom: array<u32>;

struct Params {
    output_size: u32,
    rank: u32,
    axis: u32,
    length: u32,
    step: u32,
}
@group(0) @binding(3) var<uniform> params: Params;

@compute @workgroup_size(256)
fn main(@builtin(global_invocation_id) global_id: vec3<u32>) {
    let o = global_id.x;
    if (o >= params.output_size) {
        return;
    }

    var remaining = o;
    var pos: u32 = 0u;
    var j: u32 = 0u;
    for (var d: u32 = 0u; d < params.rank; d = d + 1u) {
        if (d == params.axis) {
            continue;
        }
        let out_off = geom[params.rank + j];
        j = j + 1u;
        if (out_off == 0u) {
            continue;
        }
        let coord = remaining / out_off;
        remaining = remaining - coord * out_off;
        pos = pos + coord * geom[d];
    }

    var sum: f32 = 0.0;
    for (var t: u32 = 0u; t < params.length; t = t + 1u) {
        sum = sum + input[pos];
        pos = pos + params.step;
    }

    result[o] = sum;
}
`

// dftShader computes one output bin per invocation.
// geom: output offsets[rank], then input offsets[rank].
// The phase t*n mod boundary is carried across iterations so it never overflows u32
// and f32 angles stay small.
const dftShader = `
@group(0) @binding(0) var<storage, read> input: array<vec2<f32>>;
@group(0) @binding(1) var<storage, read_write> result: array<vec2<f32>>;
@group(0) @binding(2) var<storage, read> geom: array<u32>;

struct Params {
    size: u32,
    rank: u32,
    axis: u32,
    boundary: u32,
    in_extent: u32,
    inverse: u32,
}
@group(0) @binding(3) var<uniform> params: Params;

const PI: f32 = 3.14159265358979323846;

@compute @workgroup_size(256)
fn main(@builtin(global_invocation_id) global_id: vec3<u32>) {
    let k = global_id.x;
    if (k >= params.size) {
        return;
    }

    var remaining = k;
    var base: u32 = 0u;
    var n: u32 = 0u;
    for (var d: u32 = 0u; d < params.rank; d = d + 1u) {
        let out_off = geom[d];
        var coord: u32 = 0u;
        if (out_off != 0u) {
            coord = remaining / out_off;
            remaining = remaining - coord * out_off;
        }
        if (d == params.axis) {
            n = coord;
        } else {
            base = base + coord * geom[params.rank + d];
        }
    }
    let axis_step = geom[params.rank + params.axis];

    var kernel_pi = PI;
    if (params.inverse != 0u) {
        kernel_pi = -PI;
    }

    var sum_real: f32 = 0.0;
    var sum_imag: f32 = 0.0;
    var phase: u32 = 0u;
    for (var t: u32 = 0u; t < params.boundary; t = t + 1u) {
        var sample = vec2<f32>(0.0, 0.0);
        if (t < params.in_extent) {
            sample = input[base + t * axis_step];
        }

        let angle = 2.0 * kernel_pi * f32(phase) / f32(params.boundary);
        let c = cos(angle);
        let s = sin(angle);

        sum_real = sum_real + sample.x * c + sample.y * s;
        sum_imag = sum_imag - sample.x * s + sample.y * c;

        phase = (phase + n) % params.boundary;
    }

    if (params.inverse != 0u) {
        sum_real = sum_real / f32(params.boundary);
        sum_imag = sum_imag / f32(params.boundary);
    }

    result[k] = vec2<f32>(sum_real, sum_imag);
}
`
